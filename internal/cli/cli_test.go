package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/drills/internal/domain"
	"github.com/aalvaropc/drills/internal/infra/fsworkspace"
	"github.com/aalvaropc/drills/internal/infra/logger"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs(args)
	err := c.Execute()
	return buf.String(), err
}

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := fsworkspace.NewInitializer().Init(domain.WorkspaceSpec{Root: root}, false); err != nil {
		t.Fatalf("init workspace: %v", err)
	}
	return root
}

// --- looksLikePath ---

func TestLooksLikePath(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"basics", false},
		{"basics.yaml", false},
		{"./basics.yaml", true},
		{"drills/basics.yaml", true},
		{"/abs/path/basics.yaml", true},
	}
	for _, c := range cases {
		if got := looksLikePath(c.input); got != c.want {
			t.Errorf("looksLikePath(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

// --- resolveDrillSetArg / resolveFormat ---

func TestResolveDrillSetArg(t *testing.T) {
	ws := &workspaceCtx{root: "/ws", cfg: domain.DefaultConfig()}

	if got := resolveDrillSetArg(ws, ""); got != "basics" {
		t.Errorf("empty arg should use default drill set, got %q", got)
	}
	if got := resolveDrillSetArg(ws, "  warmup "); got != "warmup" {
		t.Errorf("expected trimmed name, got %q", got)
	}
	if got := resolveDrillSetArg(ws, "drills/x.yaml"); got != filepath.Join("/ws", "drills/x.yaml") {
		t.Errorf("relative path should be joined to root, got %q", got)
	}
	if got := resolveDrillSetArg(ws, "/abs/x.yaml"); got != "/abs/x.yaml" {
		t.Errorf("absolute path should be kept, got %q", got)
	}
}

func TestResolveFormat(t *testing.T) {
	ws := &workspaceCtx{cfg: domain.DefaultConfig()}
	ws.cfg.Output.Format = "json"

	if got := resolveFormat(ws, ""); got != "json" {
		t.Errorf("expected workspace format, got %q", got)
	}
	if got := resolveFormat(ws, " PRETTY "); got != "pretty" {
		t.Errorf("expected flag to win, got %q", got)
	}
	if got := resolveFormat(nil, ""); got != "" {
		t.Errorf("expected empty format without workspace, got %q", got)
	}
}

// --- printReport ---

func sampleReport() domain.Report {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	set := 26.0
	return domain.Report{
		ID:       "rep-42",
		DrillSet: "basics",
		Started:  now,
		Ended:    now.Add(3 * time.Millisecond),
		Thermostat: &domain.ThermostatReport{
			FahrenheitInitial: 76,
			CelsiusInitial:    24.444444,
			SetCelsius:        &set,
			FahrenheitFinal:   78.8,
			CelsiusFinal:      26,
		},
		Records: []domain.RecordReport{
			{Name: "Donald", Capabilities: []string{"glide"}, Output: []string{"Gliding!"}},
		},
		Sentences: []domain.SentenceReport{{Sentence: "May the force be with you", Longest: 5, Word: "force"}},
		Roster:    &domain.RosterReport{Required: []string{"Alan", "Jeff"}, Missing: []string{"Jeff"}},
		Checks: []domain.CheckResult{
			{Name: "jsonpath.eq", Expr: "$.records[0].output[0]", Passed: true, Message: "ok"},
			{Name: "jsonpath.exists", Expr: "$.filter", Passed: false, Message: "not found"},
		},
	}
}

func TestPrintReport_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, sampleReport(), "json"))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload), buf.String())
	assert.Equal(t, "rep-42", payload["id"])
	assert.Equal(t, "basics", payload["drill_set"])
	assert.NotNil(t, payload["thermostat"])
	assert.NotContains(t, payload, "filter")
}

func TestPrintReport_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, sampleReport(), "pretty"))
	out := buf.String()

	for _, want := range []string{
		"basics",
		"rep-42",
		"76°F = 24.4444°C",
		"set 26°C -> 78.8°F = 26°C",
		"> Gliding!",
		`5 "force"`,
		"missing: Jeff",
		"1 pass / 1 fail",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pretty output, got:\n%s", want, out)
		}
	}
}

func TestPrintReport_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printReport(&buf, domain.Report{}, ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
}

func TestPrintReport_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printReport(&buf, domain.Report{}, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

func TestCountCheckPassFail(t *testing.T) {
	pass, fail := countCheckPassFail([]domain.CheckResult{{Passed: true}, {Passed: false}, {Passed: true}})
	if pass != 2 || fail != 1 {
		t.Errorf("expected pass=2 fail=1, got pass=%d fail=%d", pass, fail)
	}
	pass, fail = countCheckPassFail(nil)
	if pass != 0 || fail != 0 {
		t.Errorf("expected 0/0, got %d/%d", pass, fail)
	}
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		26:        "26",
		78.8:      "78.8",
		24.444444: "24.4444",
		-40:       "-40",
	}
	for in, want := range cases {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd, _ := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{
		"run", "validate", "list", "version", "init",
		"thermostat", "glide", "words", "filter", "roster",
	} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd()
	for _, flag := range []string{"drill-set", "workspace", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on run command", flag)
		}
	}
}

func TestValidateCmd_Flags(t *testing.T) {
	cmd := validateCmd()
	for _, flag := range []string{"drill-set", "workspace"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on validate command", flag)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
}

// --- end to end against a scaffolded workspace ---

func TestRunCmd_SampleWorkspace(t *testing.T) {
	root := newWorkspace(t)

	out, err := execute(t, runCmd(), "-w", root, "--format", "json")
	require.NoError(t, err, out)

	var rep domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep), out)
	assert.Equal(t, "basics", rep.DrillSet)
	assert.NotEmpty(t, rep.ID)
	assert.Zero(t, rep.FailedChecks())
	require.Len(t, rep.Records, 2)
	assert.Equal(t, []string{"Gliding!"}, rep.Records[1].Output)
}

func TestRunCmd_FailedCheckReturnsError(t *testing.T) {
	root := newWorkspace(t)
	path := filepath.Join(root, "drills", "failing.yaml")
	writeFile(t, path, `
name: failing
thermostat: {fahrenheit: 32}
checks:
  "$.thermostat.celsius_initial":
    eq: "100"
`)

	out, err := execute(t, runCmd(), "-w", root, "-d", "failing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed check")
	assert.Contains(t, out, "0 pass / 1 fail")
}

func TestValidateCmd_SampleWorkspace(t *testing.T) {
	root := newWorkspace(t)
	out, err := execute(t, validateCmd(), "-w", root)
	require.NoError(t, err)
	assert.Equal(t, "OK\n", out)
}

func TestListCmd_SampleWorkspace(t *testing.T) {
	root := newWorkspace(t)
	out, err := execute(t, listCmd(), "-w", root)
	require.NoError(t, err)
	assert.Contains(t, out, "- basics")
	assert.Contains(t, out, filepath.Join("drills", "basics.yaml"))
}

// --- exercise commands ---

func TestThermostatCmd(t *testing.T) {
	out, err := execute(t, thermostatCmd(), "--fahrenheit", "76", "--set-celsius", "26")
	require.NoError(t, err)
	assert.Contains(t, out, "76°F = 24.4444°C")
	assert.Contains(t, out, "set 26°C -> 78.8°F = 26°C")
}

func TestThermostatCmd_JSON(t *testing.T) {
	out, err := execute(t, thermostatCmd(), "--fahrenheit", "32", "--format", "json")
	require.NoError(t, err)

	var rep domain.ThermostatReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.InDelta(t, 0, rep.CelsiusInitial, 1e-9)
	assert.Nil(t, rep.SetCelsius)
}

func TestThermostatCmd_RequiresFahrenheit(t *testing.T) {
	_, err := execute(t, thermostatCmd())
	require.Error(t, err)
}

func TestGlideCmd(t *testing.T) {
	out, err := execute(t, glideCmd(), "--record", "Donald", "-r", "Warrior")
	require.NoError(t, err)
	assert.Equal(t, "Donald: Gliding!\nWarrior: Gliding!\n", out)
}

func TestGlideCmd_NoRecords(t *testing.T) {
	_, err := execute(t, glideCmd())
	require.Error(t, err)
}

func TestWordsCmd(t *testing.T) {
	out, err := execute(t, wordsCmd(), "The", "quick brown fox jumped over the lazy dog")
	require.NoError(t, err)
	assert.Equal(t, "6 \"jumped\"\n", out)
}

func TestFilterCmd(t *testing.T) {
	out, err := execute(t, filterCmd(),
		"--elem", "18",
		"--array", "10,8,3",
		"--array", "14, 6, 23",
		"--array", "3,18,6",
	)
	require.NoError(t, err)
	assert.Equal(t, "[[10,8,3],[14,6,23]]\n", out)
}

func TestFilterCmd_AllRemoved(t *testing.T) {
	out, err := execute(t, filterCmd(), "--elem", "3", "--array", "3,2,3", "--array", "1,6,3")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestFilterCmd_BadInteger(t *testing.T) {
	_, err := execute(t, filterCmd(), "--elem", "3", "--array", "1,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestRosterCmd(t *testing.T) {
	out, err := execute(t, rosterCmd(), "--user", "Alan", "--user", "Jeff", "--user", "Sarah", "--user", "Ryan")
	require.NoError(t, err)
	assert.Equal(t, "everyone here\n", out)

	out, err = execute(t, rosterCmd(), "--user", "Alan", "--require", "Alan", "--require", "Jeff")
	require.NoError(t, err)
	assert.Equal(t, "missing: Jeff\n", out)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.TrimLeft(content, "\n")), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRun_ClosesLogWhenCommandFails(t *testing.T) {
	root := newWorkspace(t)
	writeFile(t, filepath.Join(root, "drills", "failing.yaml"), `
name: failing
thermostat: {fahrenheit: 32}
checks:
  "$.thermostat.celsius_initial":
    eq: "100"
`)
	wd, werr := os.Getwd()
	require.NoError(t, werr)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var buf bytes.Buffer
	err := run([]string{"run", "-d", "failing"}, &buf, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 failed check")

	assert.Error(t, logger.IsReady(), "log file must be closed after a failed command")
	assert.Empty(t, logger.Path())

	b, rerr := os.ReadFile(filepath.Join(root, ".drills", "logs", "drills.log"))
	require.NoError(t, rerr)
	assert.Contains(t, string(b), "drills.run.start")
}
