package navlog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeRegistry(t *testing.T) {
	registry := `fund_id,name,url,status
F1,Fund one,https://example.com/f1,active
F2,Fund two,https://example.com/f2,inactive
F3,Fund three,https://example.com/f3,active
`
	got, err := DecodeRegistry(strings.NewReader(registry), "fund_master.csv")
	if err != nil {
		t.Fatalf("DecodeRegistry() failed: %v", err)
	}
	want := []Instrument{
		{ID: "F1", URL: "https://example.com/f1", Status: Active},
		{ID: "F3", URL: "https://example.com/f3", Status: Active},
	}
	if len(got) != len(want) {
		t.Fatalf("DecodeRegistry() returned %d instruments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("instrument[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeRegistry_BOM(t *testing.T) {
	registry := "\ufefffund_id,url,status\nF1,https://example.com/f1,active\n"
	got, err := DecodeRegistry(strings.NewReader(registry), "fund_master.csv")
	if err != nil {
		t.Fatalf("DecodeRegistry() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "F1" {
		t.Errorf("DecodeRegistry() = %+v, want F1 only", got)
	}
}

func TestDecodeRegistry_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		registry string
		wantErr  string
	}{
		{
			name:     "empty",
			registry: "",
			wantErr:  "empty file",
		},
		{
			name:     "missing status",
			registry: "fund_id,url\nF1,https://example.com/f1\n",
			wantErr:  `missing column "status"`,
		},
		{
			name:     "missing url",
			registry: "fund_id,status\nF1,active\n",
			wantErr:  `missing column "url"`,
		},
		{
			name:     "empty id",
			registry: "fund_id,url,status\n,https://example.com/f1,active\n",
			wantErr:  "line 2: empty fund_id",
		},
		{
			name:     "duplicate",
			registry: "fund_id,url,status\nF1,https://a,active\nF1,https://b,active\n",
			wantErr:  `line 3: fund_id "F1" already defined on line 2`,
		},
		{
			name:     "id clashing with a date column",
			registry: "fund_id,url,status\nA,https://a,active\nA_date,https://b,active\n",
			wantErr:  `line 3: fund_id "A_date" clashes with the date column of "A"`,
		},
		{
			name:     "date column declared first",
			registry: "fund_id,url,status\nA_date,https://b,active\nA,https://a,active\n",
			wantErr:  `line 2: fund_id "A_date" clashes with the date column of "A"`,
		},
		{
			name:     "fetch",
			registry: "fund_id,url,status\nfetch,https://a,active\n",
			wantErr:  `line 2: fund_id "fetch" is reserved`,
		},
		{
			name:     "fetch_date",
			registry: "fund_id,url,status\nfetch_date,https://a,active\n",
			wantErr:  `line 2: fund_id "fetch_date" is reserved`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRegistry(strings.NewReader(tc.registry), "fund_master.csv")
			if err == nil {
				t.Fatalf("DecodeRegistry() expected an error, but got none")
			}
			var dfe *DataFormatError
			if !errors.As(err, &dfe) {
				t.Errorf("DecodeRegistry() error = %T, want *DataFormatError", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("DecodeRegistry() error = %q, want to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadRegistry_Missing(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "fund_master.csv"))
	var dfe *DataFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("LoadRegistry() error = %v, want *DataFormatError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadRegistry() error = %v, want to wrap fs.ErrNotExist", err)
	}
}

func TestLoadRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fund_master.csv")
	content := "fund_id,url,status\nF1,https://example.com/f1,active\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry() failed: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://example.com/f1" {
		t.Errorf("LoadRegistry() = %+v", got)
	}
}
