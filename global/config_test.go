package global

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfigLoadDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(tmpFile, []byte("server:\n  http-port: \"9090\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	c, err := ConfigLoad(tmpFile)
	if err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	if c.Server.HttpPort != "9090" {
		t.Errorf("Expected HttpPort 9090, got %s", c.Server.HttpPort)
	}
	if c.App.DefaultOwnerID != "user-123" {
		t.Errorf("Expected default owner id user-123, got %s", c.App.DefaultOwnerID)
	}
	if c.Providers.Noembed.BaseURL != "https://noembed.com" {
		t.Errorf("Expected default noembed base url, got %s", c.Providers.Noembed.BaseURL)
	}
	if c.Database.Type != "sqlite" {
		t.Errorf("Expected default database type sqlite, got %s", c.Database.Type)
	}
}

func TestConfigSave(t *testing.T) {
	// 1. 创建临时配置文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.yaml")

	initialConfig := config{
		App: app{
			DefaultOwnerID: "owner-initial",
		},
	}
	data, err := yaml.Marshal(initialConfig)
	if err != nil {
		t.Fatalf("Failed to marshal initial config: %v", err)
	}

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		t.Fatalf("Failed to write initial config file: %v", err)
	}

	// 2. 加载配置
	absPath, _ := filepath.Abs(tmpFile)
	_, err = ConfigLoad(absPath)
	if err != nil {
		t.Fatalf("ConfigLoad failed: %v", err)
	}

	// 3. 修改配置并保存
	Config.App.DefaultOwnerID = "owner-updated"
	if err := Config.Save(); err != nil {
		t.Fatalf("Config.Save error: %v, file: %s", err, Config.File)
	}

	// 4. 验证文件内容
	updatedData, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read updated config file: %v", err)
	}

	var updatedConfig config
	if err := yaml.Unmarshal(updatedData, &updatedConfig); err != nil {
		t.Fatalf("Failed to unmarshal updated config: %v", err)
	}

	if updatedConfig.App.DefaultOwnerID != "owner-updated" {
		t.Errorf("Expected DefaultOwnerID owner-updated, got %s", updatedConfig.App.DefaultOwnerID)
	}
}
