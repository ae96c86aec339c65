package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/elharo/eclipse/cmd/e4b/commands"
	"github.com/elharo/eclipse/internal/adapters/telemetry"
	"github.com/elharo/eclipse/internal/app"
	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliMocks struct {
	views    *mocks.MockViewLoader
	infos    *mocks.MockInfoAggregator
	verifier *mocks.MockArtifactVerifier
	loader   *mocks.MockSettingsLoader
	logger   *mocks.MockLogger
}

// newTestCLI wires a CLI around mocked ports and captures command output.
// Operation summaries logged by the app layer are not under test here.
func newTestCLI(ctrl *gomock.Controller) (*commands.CLI, *cliMocks, *strings.Builder) {
	m := &cliMocks{
		views:    mocks.NewMockViewLoader(ctrl),
		infos:    mocks.NewMockInfoAggregator(ctrl),
		verifier: mocks.NewMockArtifactVerifier(ctrl),
		loader:   mocks.NewMockSettingsLoader(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(m.views, m.infos, m.verifier, m.logger, telemetry.NewNoopTelemetry())

	cli := commands.New(&app.Components{App: a, Settings: m.loader})
	out := &strings.Builder{}
	cli.SetOut(out)
	return cli, m, out
}

// defaultSettings stubs the settings lookup that runs before every command.
func defaultSettings(m *cliMocks) {
	m.loader.EXPECT().Load(".").Return(domain.Settings{}.WithDefaults(), nil)
}

// infoMap builds an aggregation result by decoding minimal aspect documents,
// the only way records enter the system.
func infoMap(t *testing.T, labels ...string) domain.BuildInfoMap {
	t.Helper()
	infos := domain.BuildInfoMap{}
	for _, label := range labels {
		doc := fmt.Sprintf(`{
			"label": %q,
			"kind": "java_library",
			"build_file_artifact_location": "java/BUILD",
			"jars": [{"jar": "bin/lib.jar"}],
			"generated_jars": [],
			"dependencies": [],
			"sources": []
		}`, label)
		var info domain.BuildInfo
		if err := json.Unmarshal([]byte(doc), &info); err != nil {
			t.Fatalf("failed to decode fixture: %v", err)
		}
		infos.Put(info)
	}
	return infos
}

func TestView_DefaultPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	view := domain.NewProjectView([]string{"java/app"}, []string{"//java/app:app"}, nil, 17)
	m.views.EXPECT().Load(".bazelproject").Return(view, nil)

	cli.SetArgs([]string{"view"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"directories:\n  java/app\n",
		"targets:\n  //java/app:app\n",
		"java_language_level: 17\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestView_ExplicitPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	m.views.EXPECT().Load("ij.bazelproject").Return(domain.NewProjectView([]string{"java"}, nil, nil, 0), nil)

	cli.SetArgs([]string{"view", "ij.bazelproject"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// An unset language level stays off the report.
	if strings.Contains(out.String(), "java_language_level") {
		t.Errorf("Expected no language level line, got:\n%s", out.String())
	}
}

func TestView_JSONFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	view := domain.NewProjectView([]string{"java/app"}, nil, []string{"--define=x=y"}, 11)
	m.views.EXPECT().Load(".bazelproject").Return(view, nil)

	cli.SetArgs([]string{"view", "--format", "json"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var decoded struct {
		Directories       []string `json:"directories"`
		BuildFlags        []string `json:"build_flags"`
		JavaLanguageLevel int      `json:"java_language_level"`
	}
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("Expected valid JSON output, got: %v\n%s", err, out.String())
	}
	if len(decoded.Directories) != 1 || decoded.Directories[0] != "java/app" {
		t.Errorf("Expected directories [java/app], got: %v", decoded.Directories)
	}
	if decoded.JavaLanguageLevel != 11 {
		t.Errorf("Expected language level 11, got: %d", decoded.JavaLanguageLevel)
	}
}

func TestView_Fingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	view := domain.NewProjectView([]string{"java/app"}, nil, nil, 0)
	m.views.EXPECT().Load(".bazelproject").Return(view, nil)

	cli.SetArgs([]string{"view", "--fingerprint"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := strings.TrimSpace(out.String()); got != view.Fingerprint() {
		t.Errorf("Expected fingerprint %q, got %q", view.Fingerprint(), got)
	}
}

func TestView_URL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	view := domain.NewProjectView([]string{"java/app"}, nil, nil, 0)
	m.views.EXPECT().LoadURL("https://example.com/ci.bazelproject").Return(view, nil)

	cli.SetArgs([]string{"view", "--url", "https://example.com/ci.bazelproject"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out.String(), "java/app") {
		t.Errorf("Expected output to list directories, got:\n%s", out.String())
	}
}

func TestView_URLRequiresArgument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	defaultSettings(m)

	cli.SetArgs([]string{"view", "--url"})
	err := cli.Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "URL argument") {
		t.Errorf("Expected a URL argument error, got: %v", err)
	}
}

func TestView_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	defaultSettings(m)

	m.views.EXPECT().Load(".bazelproject").Return(domain.NewProjectView(nil, nil, nil, 0), nil)

	cli.SetArgs([]string{"view", "--format", "yaml"})
	err := cli.Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Expected an unknown format error, got: %v", err)
	}
}

func TestInfo_TextFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	m.infos.EXPECT().Aggregate([]string{"a.json", "b.json"}).
		Return(infoMap(t, "//java/lib:lib", "//java/app:app"), nil)

	cli.SetArgs([]string{"info", "a.json", "b.json", "--format", "text"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "//java/app:app\n//java/lib:lib\n"
	if out.String() != want {
		t.Errorf("Expected sorted labels %q, got %q", want, out.String())
	}
}

func TestInfo_JSONFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	m.infos.EXPECT().Aggregate([]string{"a.json"}).Return(infoMap(t, "//java/app:app"), nil)

	cli.SetArgs([]string{"info", "a.json"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	var decoded map[string]struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatalf("Expected valid JSON output, got: %v\n%s", err, out.String())
	}
	if decoded["//java/app:app"].Kind != "java_library" {
		t.Errorf("Expected a java_library record keyed by label, got: %v", decoded)
	}
}

func TestInfo_ManifestFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	defaultSettings(m)

	m.infos.EXPECT().AggregateManifest("outputs.txt").Return(infoMap(t, "//java/app:app"), nil)

	cli.SetArgs([]string{"info", "-m", "outputs.txt", "--format", "text"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestInfo_SettingsManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	m.loader.EXPECT().Load(".").Return(domain.Settings{Manifest: "nightly.txt"}.WithDefaults(), nil)

	m.infos.EXPECT().AggregateManifest("nightly.txt").Return(infoMap(t, "//java/app:app"), nil)

	cli.SetArgs([]string{"info", "--format", "text"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestInfo_NoSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	defaultSettings(m)

	cli.SetArgs([]string{"info"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrNoBuildInfo) {
		t.Errorf("Expected ErrNoBuildInfo, got: %v", err)
	}
}

func TestVerify_AllPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	infos := infoMap(t, "//java/app:app")
	m.infos.EXPECT().Aggregate([]string{"a.json"}).Return(infos, nil)
	m.verifier.EXPECT().VerifyJars(gomock.Any(), infos, ".").
		Return(domain.ArtifactReport{Checked: 2}, nil)

	cli.SetArgs([]string{"verify", "a.json"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out.String() != "all 2 artifacts present\n" {
		t.Errorf("Expected a success summary, got %q", out.String())
	}
}

func TestVerify_ReportsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	infos := infoMap(t, "//java/app:app")
	m.infos.EXPECT().Aggregate([]string{"a.json"}).Return(infos, nil)
	m.verifier.EXPECT().VerifyJars(gomock.Any(), infos, ".").
		Return(domain.ArtifactReport{Checked: 3, Missing: []string{"bin/app.jar", "bin/lib.jar"}}, nil)

	cli.SetArgs([]string{"verify", "a.json"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, domain.ErrArtifactsMissing) {
		t.Errorf("Expected ErrArtifactsMissing, got: %v", err)
	}

	want := "missing: bin/app.jar\nmissing: bin/lib.jar\n"
	if out.String() != want {
		t.Errorf("Expected missing paths %q, got %q", want, out.String())
	}
}

func TestVerify_RootFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)
	defaultSettings(m)

	infos := infoMap(t, "//java/app:app")
	m.infos.EXPECT().Aggregate([]string{"a.json"}).Return(infos, nil)
	m.verifier.EXPECT().VerifyJars(gomock.Any(), infos, "bazel-out").
		Return(domain.ArtifactReport{Checked: 1}, nil)

	cli.SetArgs([]string{"verify", "a.json", "--root", "bazel-out"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestConfigFlagBypassesWorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectation on the settings loader: the flag names the file directly.
	cli, m, _ := newTestCLI(ctrl)

	path := filepath.Join(t.TempDir(), "e4b.yaml")
	if err := os.WriteFile(path, []byte("view: ci.bazelproject\n"), 0o600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	m.views.EXPECT().Load("ci.bazelproject").Return(domain.NewProjectView(nil, nil, nil, 0), nil)

	cli.SetArgs([]string{"--config", path, "view"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestSettingsLoadFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, _ := newTestCLI(ctrl)

	loadErr := errors.New("yaml: unmarshal errors")
	m.loader.EXPECT().Load(".").Return(domain.Settings{}, loadErr)

	cli.SetArgs([]string{"view"})
	err := cli.Execute(context.Background())
	if !errors.Is(err, loadErr) {
		t.Errorf("Expected the settings error to propagate, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, m, out := newTestCLI(ctrl)
	defaultSettings(m)

	cli.SetArgs([]string{"version"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out.String() != "e4b version dev\n" {
		t.Errorf("Expected version output, got %q", out.String())
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _ := newTestCLI(ctrl)

	cli.SetArgs([]string{"--help"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}
