package doctor

import (
	"context"
	"testing"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/thoreinstein/maa/internal/errors"
)

func TestHostCheck_Run(t *testing.T) {
	tests := []struct {
		name       string
		info       HostInfoFunc
		wantStatus Severity
	}{
		{
			name: "linux",
			info: func(context.Context) (*host.InfoStat, error) {
				return &host.InfoStat{OS: "linux", KernelVersion: "3.8.7-yocto-standard", KernelArch: "i586"}, nil
			},
			wantStatus: SeverityInfo,
		},
		{
			name: "darwin",
			info: func(context.Context) (*host.InfoStat, error) {
				return &host.InfoStat{OS: "darwin"}, nil
			},
			wantStatus: SeverityWarning,
		},
		{
			name: "query error",
			info: func(context.Context) (*host.InfoStat, error) {
				return nil, errors.New("not implemented")
			},
			wantStatus: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewHostCheck(tt.info).Run(t.Context())
			if result.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", result.Status, tt.wantStatus)
			}
			if result.Category != "host" {
				t.Errorf("Category = %q, want %q", result.Category, "host")
			}
		})
	}
}

func TestHostCheck_Message(t *testing.T) {
	result := NewHostCheck(func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{OS: "linux", KernelVersion: "3.8.7", KernelArch: "i586"}, nil
	}).Run(t.Context())

	if result.Message != "linux 3.8.7 (i586)" {
		t.Errorf("Message = %q", result.Message)
	}
	if got := result.Details["kernel_arch"]; got != "i586" {
		t.Errorf("Details[kernel_arch] = %v, want i586", got)
	}
}

func TestHostCheck_Deadline(t *testing.T) {
	var hasDeadline bool
	NewHostCheck(func(ctx context.Context) (*host.InfoStat, error) {
		_, hasDeadline = ctx.Deadline()
		return &host.InfoStat{OS: "linux"}, nil
	}).Run(t.Context())
	if !hasDeadline {
		t.Error("host query ran without a deadline")
	}
}
