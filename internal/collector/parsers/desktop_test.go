package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGsettingsFont(t *testing.T) {
	assert.Equal(t, "Cantarell 11", ParseGsettingsFont("'Cantarell 11'\n"))
	assert.Equal(t, "Ubuntu 11", ParseGsettingsFont("Ubuntu 11"))
	assert.Equal(t, "", ParseGsettingsFont(""))
}

func TestShellName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/bin/bash", "bash"},
		{"/usr/local/bin/fish", "fish"},
		{`C:\WINDOWS\system32\cmd.exe`, "cmd.exe"},
		{`C:/tools\pwsh.exe`, "pwsh.exe"},
		{"zsh", "zsh"},
		{"", ""},
		{"/bin/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ShellName(tt.in))
		})
	}
}

func TestTrimDomain(t *testing.T) {
	assert.Equal(t, "alice", TrimDomain(`WORKSTATION\alice`))
	assert.Equal(t, "alice", TrimDomain("alice"))
	assert.Equal(t, "", TrimDomain(`DOMAIN\`))
}
