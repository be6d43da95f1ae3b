package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name        string
		logger      Logger
		wantInfo    bool
		wantDebug   bool
		wantWarn    bool
		wantErrorln bool
	}{
		{"Quiet", Logger{}, false, false, false, false},
		{"Verbose", Logger{Verbose: true}, true, false, true, false},
		{"Debug", Logger{Debug: true}, true, true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := tc.logger
			l.Out = &out
			l.Err = &errOut

			l.Infof("info %d", 1)
			l.Debugf("debug %d", 2)
			l.Warnf("warn %d", 3)
			l.Errorf("error %d", 4)

			if got := strings.Contains(out.String(), "info 1"); got != tc.wantInfo {
				t.Errorf("info shown = %v, expected %v", got, tc.wantInfo)
			}
			if got := strings.Contains(out.String(), "debug 2"); got != tc.wantDebug {
				t.Errorf("debug shown = %v, expected %v", got, tc.wantDebug)
			}
			if got := strings.Contains(errOut.String(), "warn 3"); got != tc.wantWarn {
				t.Errorf("warn shown = %v, expected %v", got, tc.wantWarn)
			}
			if got := strings.Contains(errOut.String(), "error 4"); got != tc.wantErrorln {
				t.Errorf("error shown = %v, expected %v", got, tc.wantErrorln)
			}
		})
	}
}

func TestWarnfAlways(t *testing.T) {
	var errOut bytes.Buffer
	l := Logger{Err: &errOut}
	l.WarnfAlways("env file %s not found", ".kms")

	if !strings.Contains(errOut.String(), "env file .kms not found") {
		t.Errorf("Expected warning in output, got %q", errOut.String())
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var errOut bytes.Buffer
	l := Logger{Err: &errOut}
	err := l.ErrorfAndReturn("failed: %s", "boom")
	if err == nil || err.Error() != "failed: boom" {
		t.Fatalf("Expected error 'failed: boom', got %v", err)
	}
	if errOut.Len() != 0 {
		t.Errorf("Expected no output without debug, got %q", errOut.String())
	}
}
