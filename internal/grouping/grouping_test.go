package grouping

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParse_GroupsInFirstSeenOrder(t *testing.T) {
	in := "TeamA,Alice Smith\nTeamA,Bob\nTeamB,Carol\n"
	g, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	want := Groups{
		{Label: "TeamA", Names: []string{"Alice_Smith", "Bob"}},
		{Label: "TeamB", Names: []string{"Carol"}},
	}
	assert.Equal(t, want, g)
	assert.Equal(t, []string{"Alice_Smith", "Bob", "Carol"}, g.Flatten())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"TeamA", "TeamB"}, g.Labels())
}

func TestParse_RepeatedLabelAccumulates(t *testing.T) {
	in := "B,one\nA,two\nB,three\nA,four\n"
	g, err := Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A"}, g.Labels())
	assert.Equal(t, []string{"one", "three", "two", "four"}, g.Flatten())
}

func TestParse_NameNormalization(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"single space", `G,Alice Smith`, "Alice_Smith"},
		{"many spaces", `G,"Anna  Maria de Vries "`, "Anna__Maria_de_Vries_"},
		{"case and punctuation kept", `G,"O'Brien, Jr."`, "O'Brien,_Jr."},
		{"tab is not a space", "G,\"Tab\tName\"", "Tab\tName"},
		{"unicode kept", `G,Zoë Ångström`, "Zoë_Ångström"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(strings.NewReader(tt.row + "\n"))
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, g.Flatten())
		})
	}
}

func TestParse_ExtraColumnsIgnored(t *testing.T) {
	g, err := Parse(strings.NewReader("TeamA,Alice,row 1,x\nTeamB,Bob\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, g.Flatten())
}

func TestParse_SkipsBlankLinesAndBOM(t *testing.T) {
	g, err := Parse(strings.NewReader("\ufeffTeamA,Alice\n\nTeamA,Bob\n"))
	require.NoError(t, err)
	assert.Equal(t, Groups{{Label: "TeamA", Names: []string{"Alice", "Bob"}}}, g)
}

func TestParse_Empty(t *testing.T) {
	g, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Flatten())
}

func TestParse_MalformedRow(t *testing.T) {
	_, err := Parse(strings.NewReader("TeamA,Alice\nTeamB\nTeamC,Carol\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedRow))

	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 2, mre.Line)
	assert.Equal(t, 1, mre.Fields)
	assert.Contains(t, err.Error(), "row 2")
}

func TestParse_BadQuoting(t *testing.T) {
	_, err := Parse(strings.NewReader("TeamA,\"Alice\n"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrMalformedRow))
}

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte("TeamA,Alice Smith\nTeamA,Bob\nTeamB,Carol\n"), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice_Smith", "Bob", "Carol"}, g.Flatten())
}

func TestLoad_MalformedWrapsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte("TeamA\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrMalformedRow)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_XLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"TeamA", "Alice Smith"},
		{"TeamA", "Bob"},
		{"TeamB", "Carol"},
	})

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Groups{
		{Label: "TeamA", Names: []string{"Alice_Smith", "Bob"}},
		{Label: "TeamB", Names: []string{"Carol"}},
	}, g)
}

func TestLoad_XLSXMalformedRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"TeamA", "Alice"},
		{"TeamB"},
	})

	_, err := Load(path)
	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, 2, mre.Line)
}

func TestSave_OrderedIndentedJSON(t *testing.T) {
	g := Groups{
		{Label: "TeamB", Names: []string{"Carol"}},
		{Label: "TeamA", Names: []string{"Alice_Smith", "Bob"}},
	}
	path := filepath.Join(t.TempDir(), "out", "output.json")
	require.NoError(t, Save(path, g))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `{
    "TeamB": [
        "Carol"
    ],
    "TeamA": [
        "Alice_Smith",
        "Bob"
    ]
}
`
	assert.Equal(t, want, string(b))
}

func TestSave_EndToEndArtifact(t *testing.T) {
	g, err := Parse(strings.NewReader("TeamA,Alice Smith\nTeamA,Bob\nTeamB,Carol\n"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, Save(path, g))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, map[string][]string{
		"TeamA": {"Alice_Smith", "Bob"},
		"TeamB": {"Carol"},
	}, decoded)
}

func TestSave_KeepsAmpersand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, Save(path, Groups{{Label: "R&D", Names: []string{"Smith_&_Co"}}}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"R&D"`)
	assert.Contains(t, string(b), `"Smith_&_Co"`)
}

func TestSave_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.json")
	require.NoError(t, Save(path, nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(b))
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(t.TempDir(), "names.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
