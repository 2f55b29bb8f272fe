package storage

import "testing"

func TestObjectKey(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"exports", "kpi.xlsx", "exports/kpi.xlsx"},
		{"/exports/", "kpi.xlsx", "exports/kpi.xlsx"},
		{"", "kpi.xlsx", "kpi.xlsx"},
		{"exports/2024", "customers.xlsx", "exports/2024/customers.xlsx"},
	}

	for _, tt := range tests {
		if got := ObjectKey(tt.prefix, tt.name); got != tt.want {
			t.Errorf("ObjectKey(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		endpoint   string
		useSSL     bool
		wantHost   string
		wantSecure bool
	}{
		{"localhost:9000", false, "localhost:9000", false},
		{"localhost:9000", true, "localhost:9000", true},
		{"https://s3.example.com/", false, "s3.example.com", true},
		{"http://minio:9000", true, "minio:9000", false},
	}

	for _, tt := range tests {
		host, secure := normalizeEndpoint(tt.endpoint, tt.useSSL)
		if host != tt.wantHost || secure != tt.wantSecure {
			t.Errorf("normalizeEndpoint(%q, %v) = %q, %v", tt.endpoint, tt.useSSL, host, secure)
		}
	}
}

func TestNewMinioClientValidation(t *testing.T) {
	valid := MinioConfig{Endpoint: "localhost:9000", AccessKey: "key", SecretKey: "secret", Bucket: "reports"}

	if _, err := NewMinioClient(valid); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	for name, mutate := range map[string]func(*MinioConfig){
		"endpoint": func(c *MinioConfig) { c.Endpoint = "" },
		"creds":    func(c *MinioConfig) { c.SecretKey = "" },
		"bucket":   func(c *MinioConfig) { c.Bucket = "" },
	} {
		cfg := valid
		mutate(&cfg)
		if _, err := NewMinioClient(cfg); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
