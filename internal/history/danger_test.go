package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDanger(t *testing.T) {
	tests := []struct {
		cmd  string
		want string
	}{
		{"rm -rf /tmp/build", "Recursive delete"},
		{"  sudo rm -r /var/log ", "Recursive delete"},
		{"dd if=disk.img of=/dev/sda bs=4M", "Disk overwrite"},
		{"mkfs.ext4 /dev/sdb1", "Filesystem creation"},
		{"sudo reboot", "Power state"},
		{"git branch -D feature", "Git branch deletion"},
		{"git push origin main --force", "Force push"},
		{"git push -f", "Force push"},
		{"git reset --hard HEAD~1", "Hard reset"},
		{"chmod -R 777 .", "World-writable permissions"},
		{"Remove-Item C:\\build -Recurse -Force", "Recursive delete"},
		{"ls -la", ""},
		{"git push", ""},
		{"rm file.txt", ""},
		{"git branch -d merged", ""},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			d := CheckDanger(tt.cmd)
			if tt.want == "" {
				assert.Nil(t, d)
				return
			}
			require.NotNil(t, d)
			assert.Equal(t, tt.want, d.Name)
			assert.Contains(t, d.Warning(), tt.want+": ")
		})
	}
}
