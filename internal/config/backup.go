package config

import (
	"fmt"
	"io"
	"os"
)

// backupSuffix is appended to a config file's name to form its backup path.
const backupSuffix = ".bak"

// Backup copies the configuration file to ConfigPath()+".bak", keeping its
// permissions, and returns the backup path. It returns "" when there is no
// file to back up.
func (c *Config) Backup() (string, error) {
	if c.configPath == "" {
		return "", nil
	}
	if _, err := os.Stat(c.configPath); os.IsNotExist(err) {
		return "", nil
	}

	dst := c.configPath + backupSuffix
	if err := copyFile(c.configPath, dst); err != nil {
		return "", fmt.Errorf("backing up %s: %w", c.configPath, err)
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, sourceInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}
	if err = destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, sourceInfo.Mode().Perm())
}
