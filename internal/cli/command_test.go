package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrphon/ipauk"
)

// execute runs the root command with fresh viper state and returns what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := CreateRootCommand(NewFlags())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCreateRootCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := CreateRootCommand(NewFlags())
	assert.Equal(t, "ipauk [text...]", cmd.Use)
	assert.Equal(t, ipauk.Version, cmd.Version)

	for _, name := range []string{"check-accent", "batch", "trace", "examples", "workers"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestFlagDefaultsBoundToViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	CreateRootCommand(NewFlags())
	assert.False(t, viper.GetBool(keyCheckAccent))
	assert.Equal(t, 0, viper.GetInt(keyWorkers))
	assert.Equal(t, "warn", viper.GetString(keyLogLevel))
}

func TestTranscribeArgs(t *testing.T) {
	out, _, err := execute(t, "", "Сла"+ipauk.Acute+"ва", "Украї"+ipauk.Acute+"ні")
	require.NoError(t, err)
	assert.Equal(t, "ˈsɫaʋɐ ʊkrɐˈjinʲi\n", out)
}

func TestTranscribeAccentMissing(t *testing.T) {
	_, _, err := execute(t, "", "--check-accent", "вода")
	assert.ErrorIs(t, err, ipauk.ErrAccentMissing)

	out, _, err := execute(t, "", "вода")
	require.NoError(t, err)
	assert.Equal(t, "wɔdɐ\n", out)
}

func TestUnderscoreFlagNames(t *testing.T) {
	_, _, err := execute(t, "", "--check_accent", "вода")
	assert.ErrorIs(t, err, ipauk.ErrAccentMissing)
}

func TestTrace(t *testing.T) {
	out, _, err := execute(t, "", "--trace", "Сла"+ipauk.Acute+"ва")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "сла"+ipauk.Acute+"ва\tˈsɫaʋɐ", lines[0])
	assert.Equal(t, "  stress        #ˈslaʋɐ#", lines[5])
	assert.Equal(t, "  final         #ˈsɫaʋɐ#", lines[6])
}

func TestExamples(t *testing.T) {
	out, _, err := execute(t, "", "--examples")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(ipauk.Examples()))
	assert.Equal(t, "Сла"+ipauk.Acute+"ва\tˈsɫaʋɐ", lines[0])
	assert.Equal(t, "остзе"+ipauk.Acute+"йці\tɔzdˈzɛi̯t͡sʲi", lines[4])
}

func TestBatchStdin(t *testing.T) {
	in := "! comment\nсла" + ipauk.Acute + "ва\n\nлев\n"
	out, _, err := execute(t, in, "--batch", "-", "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "сла"+ipauk.Acute+"ва\tˈsɫaʋɐ\nлев\tɫeu̯\n", out)
}

func TestBatchFileWithFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("вода\nлев\n"), 0o644))

	out, errOut, err := execute(t, "", "--check-accent", "--batch", path)
	assert.ErrorIs(t, err, ErrBatchFailed)
	assert.Equal(t, "лев\tɫɛu̯\n", out)
	assert.Contains(t, errOut, "вода: the provided text is missing an accent")
}

func TestBatchFileMissing(t *testing.T) {
	_, _, err := execute(t, "", "--batch", filepath.Join(t.TempDir(), "none.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open batch file")
}

func TestNoInputShowsHelp(t *testing.T) {
	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestInitConfigFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "ipauk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("transcribe:\n  check_accent: true\nbatch:\n  workers: 3\n"), 0o644))

	InitConfig(path)
	assert.True(t, viper.GetBool(keyCheckAccent))
	assert.Equal(t, 3, viper.GetInt(keyWorkers))
}

func TestInitConfigEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("IPAUK_LOG_LEVEL", "debug")

	InitConfig("")
	assert.Equal(t, "debug", viper.GetString(keyLogLevel))
}
