package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "standard configuration",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "testuser",
				Password: "testpass",
				Database: "testdb",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name: "production configuration",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				User:     "produser",
				Password: "securepass123",
				Database: "proddb",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 user=produser password=securepass123 dbname=proddb sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ConnectionString(); got != tt.want {
				t.Errorf("DatabaseConfig.ConnectionString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitConfig(t *testing.T) {
	// Save original working directory
	originalWd, _ := os.Getwd()
	defer os.Chdir(originalWd)

	tests := []struct {
		name string
		env  string
	}{
		{name: "default dev environment", env: ""},
		{name: "explicit dev environment", env: "dev"},
		{name: "test environment", env: "test"},
		{name: "prod environment", env: "prod"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			if err := InitConfig(tt.env); err != nil {
				t.Errorf("InitConfig() error = %v", err)
				return
			}

			// Verify default values are set
			if viper.GetString("SERVER_HOST") != "0.0.0.0" {
				t.Errorf("InitConfig() SERVER_HOST = %v, want 0.0.0.0", viper.GetString("SERVER_HOST"))
			}
			if viper.GetInt("SERVER_PORT") != 50052 {
				t.Errorf("InitConfig() SERVER_PORT = %v, want 50052", viper.GetInt("SERVER_PORT"))
			}
			if viper.GetString("DB_HOST") != "localhost" {
				t.Errorf("InitConfig() DB_HOST = %v, want localhost", viper.GetString("DB_HOST"))
			}
			if viper.GetString("DB_USER") != "monban" {
				t.Errorf("InitConfig() DB_USER = %v, want monban", viper.GetString("DB_USER"))
			}
			if viper.GetString("SUPER_ADMIN_ACTION") != "core.admin" {
				t.Errorf("InitConfig() SUPER_ADMIN_ACTION = %v, want core.admin", viper.GetString("SUPER_ADMIN_ACTION"))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func()
		wantErr     bool
		wantErrMsg  string
		validateCfg func(*testing.T, *Config)
	}{
		{
			name: "successful load with password",
			setupEnv: func() {
				viper.Reset()
				viper.Set("DB_PASSWORD", "testpassword")
				viper.SetDefault("SERVER_HOST", "0.0.0.0")
				viper.SetDefault("SERVER_PORT", 50052)
				viper.SetDefault("DB_HOST", "localhost")
				viper.SetDefault("DB_PORT", 15432)
				viper.SetDefault("DB_USER", "monban")
				viper.SetDefault("DB_NAME", "monban_dev")
				viper.SetDefault("DB_SSLMODE", "disable")
				viper.SetDefault("SUPER_ADMIN_ACTION", "core.admin")
			},
			wantErr: false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != 50052 {
					t.Errorf("Load() Server.Port = %v, want 50052", cfg.Server.Port)
				}
				if cfg.Database.User != "monban" {
					t.Errorf("Load() Database.User = %v, want monban", cfg.Database.User)
				}
				if cfg.Database.Password != "testpassword" {
					t.Errorf("Load() Database.Password = %v, want testpassword", cfg.Database.Password)
				}
				if cfg.Database.Database != "monban_dev" {
					t.Errorf("Load() Database.Database = %v, want monban_dev", cfg.Database.Database)
				}
				if cfg.Resolver.SuperAdminAction != "core.admin" {
					t.Errorf("Load() Resolver.SuperAdminAction = %v, want core.admin", cfg.Resolver.SuperAdminAction)
				}
			},
		},
		{
			name: "missing password",
			setupEnv: func() {
				viper.Reset()
				viper.SetDefault("SERVER_HOST", "0.0.0.0")
				viper.SetDefault("SERVER_PORT", 50052)
			},
			wantErr:    true,
			wantErrMsg: "DB_PASSWORD is required (set via environment variable or .env file)",
		},
		{
			name: "custom super admin action",
			setupEnv: func() {
				viper.Reset()
				viper.Set("DB_PASSWORD", "pass123")
				viper.Set("SUPER_ADMIN_ACTION", "site.superuser")
			},
			wantErr: false,
			validateCfg: func(t *testing.T, cfg *Config) {
				if cfg.Resolver.SuperAdminAction != "site.superuser" {
					t.Errorf("Load() Resolver.SuperAdminAction = %v, want site.superuser", cfg.Resolver.SuperAdminAction)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			defer viper.Reset()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if err.Error() != tt.wantErrMsg {
					t.Errorf("Load() error = %v, want %v", err.Error(), tt.wantErrMsg)
				}
				return
			}

			if tt.validateCfg != nil {
				tt.validateCfg(t, cfg)
			}
		})
	}
}

func TestFindProjectRoot(t *testing.T) {
	// Save original working directory
	originalWd, _ := os.Getwd()
	defer os.Chdir(originalWd)

	// This test assumes we're running from within the project
	root, err := findProjectRoot()
	if err != nil {
		t.Errorf("findProjectRoot() error = %v, want nil", err)
		return
	}

	// Verify go.mod exists in the returned root
	goModPath := root + "/go.mod"
	if _, err := os.Stat(goModPath); os.IsNotExist(err) {
		t.Errorf("findProjectRoot() returned %v, but go.mod does not exist at %v", root, goModPath)
	}
}
