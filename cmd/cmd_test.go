package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/tutils/mtrand/mt"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append(args, "--log-level=quiet"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestDraw(t *testing.T) {
	out := execute(t, "draw", "-n", "3", "--seed", "5489")
	if want := "3499211612\n581869302\n3890346734\n"; out != want {
		t.Fatalf("draw = %q, want %q", out, want)
	}
}

func TestDerive(t *testing.T) {
	out := execute(t, "derive", "-k", "2", "-n", "3", "--seed", "42")

	got := map[string]bool{}
	for _, ln := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		got[ln] = true
	}
	if len(got) != 6 {
		t.Fatalf("derive printed %d distinct lines: %q", len(got), out)
	}
	for i, g := range mt.New(mt.WithSeed(42)).Split(2) {
		for j := 0; j < 3; j++ {
			if ln := fmt.Sprintf("%d\t%d\t%d", i, j, g.Uint32()); !got[ln] {
				t.Errorf("missing line %q", ln)
			}
		}
	}
}

func TestUUID(t *testing.T) {
	a := execute(t, "uuid", "-n", "2", "--seed", "7")
	b := execute(t, "uuid", "-n", "2", "--seed", "7")
	if a != b {
		t.Fatalf("uuids not reproducible: %q != %q", a, b)
	}
	for _, s := range strings.Fields(a) {
		id, err := uuid.Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if id.Version() != 4 {
			t.Fatalf("%s has version %d", s, id.Version())
		}
	}
}

func TestCmdline(t *testing.T) {
	args := []string{"draw", "-n", "5", "--seed=5489"}
	s, err := encodeCmdline(args)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(raw, []byte("draw")) {
		t.Fatalf("token %q is not masked", s)
	}
	decoded, err := decodeCmdline(s)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(decoded, " ") != strings.Join(args, " ") {
		t.Fatalf("decoded %q, want %q", decoded, args)
	}

	if _, err := decodeCmdline("not a token"); err == nil {
		t.Fatal("garbage token decoded")
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"trace", "verb", "debug", "info", "notice", "warn", "warning", "error", "quiet", "silent", "INFO"} {
		if _, err := parseLevel(s); err != nil {
			t.Errorf("parseLevel(%q): %v", s, err)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Error("parseLevel(loud) succeeded")
	}
}

func TestSamplePerm(t *testing.T) {
	out := execute(t, "sample", "perm", "-n", "5", "--seed", "42")
	if lines := strings.Fields(out); len(lines) != 5 {
		t.Fatalf("perm printed %q", out)
	}
	if again := execute(t, "sample", "perm", "-n", "5", "--seed", "42"); again != out {
		t.Fatalf("perm not reproducible: %q != %q", again, out)
	}
}

func TestSamplePareto(t *testing.T) {
	out := execute(t, "sample", "pareto", "-n", "4", "--xmin", "2", "--alpha", "3", "--seed", "42")
	if lines := strings.Fields(out); len(lines) != 4 {
		t.Fatalf("pareto printed %q", out)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"sample", "pareto", "--alpha", "1", "--seed", "42", "--log-level=quiet"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("alpha=1 accepted")
	}
}

func TestBench(t *testing.T) {
	out := execute(t, "bench", "-w", "2", "-d", "50ms", "--seed", "1")
	if !strings.HasPrefix(out, "workers=2 draws=") {
		t.Fatalf("bench printed %q", out)
	}
}
