package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpan/Text-GuessEncoding/internal/core/domain"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestProbeCmd_Use(t *testing.T) {
	assert.Equal(t, "probe [file...]", probeCmd.Use)
}

func TestProbeCmd_HasJSONFlag(t *testing.T) {
	flag := probeCmd.Flags().Lookup("json")
	require.NotNil(t, flag, "json flag should exist")
	assert.Equal(t, "false", flag.DefValue)
}

func TestProbeCmd_ASCIIFile(t *testing.T) {
	path := writeTempFile(t, "plain.txt", []byte("hello"))

	out, _, err := execute(t, "probe", path)

	require.NoError(t, err)
	assert.Contains(t, out, path+": utf8_valid=0 utf8_invalid=0 latin1_typ=0 ascii=5")
	assert.Contains(t, out, "[ascii]")
}

func TestProbeCmd_UTF8File(t *testing.T) {
	path := writeTempFile(t, "name.txt", []byte("J\xC3\xBCrgen"))

	out, _, err := execute(t, "probe", path)

	require.NoError(t, err)
	assert.Contains(t, out, "utf8_valid=1")
	assert.Contains(t, out, "ascii=5")
	assert.Contains(t, out, "[utf8]")
}

func TestProbeCmd_MultipleFiles(t *testing.T) {
	ascii := writeTempFile(t, "a.txt", []byte("abc"))
	latin1 := writeTempFile(t, "b.txt", []byte{0xFC, 0x20})

	out, _, err := execute(t, "probe", ascii, latin1)

	require.NoError(t, err)
	assert.Contains(t, out, "[ascii]")
	assert.Contains(t, out, "[latin1]")
}

func TestProbeCmd_JSONOutput(t *testing.T) {
	defer func() { probeJSON = false }()
	path := writeTempFile(t, "plain.txt", []byte("hi"))

	out, _, err := execute(t, "probe", "--json", path)

	require.NoError(t, err)
	var reports []domain.ProbeReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, domain.VerdictASCII, reports[0].Verdict)
	assert.Equal(t, 2, reports[0].Counters.ASCII)
}

func TestProbeCmd_MissingFile(t *testing.T) {
	_, _, err := execute(t, "probe", filepath.Join(t.TempDir(), "absent.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}
