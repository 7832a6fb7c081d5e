package xregistry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlData = `
blocks:
  - addressBlock: 100.100.0.0/16
    name: Private-Use
    globallyReachable: "False [1]"
    source: true
    rfc: "[RFC1918] [2]"
    terminationDate: null
    type: Other
  - addressBlock: "fd12:3456::/32"
    name: Unique-Local
    forwardable: "yes"
`

const jsonData = `{
  "blocks": [
    {"addressBlock": "100.100.0.0/16", "name": "Private-Use", "globallyReachable": false, "destination": 1},
    {"addressBlock": "fd12:3456::/32", "name": "Unique-Local", "type": "IANA"}
  ]
}`

func TestLoadRecords(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", yamlData, FormatYAML},
		{"json", jsonData, FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := LoadRecords([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Len(t, recs, 2)

			r, err := Build(recs)
			require.NoError(t, err)
			require.Equal(t, 2, r.Len())

			v4 := r.IPv4()[0]
			assert.Equal(t, "100.100.0.0/16", v4.AddressBlock)
			assert.Equal(t, "Private-Use", v4.Name)
			assert.Equal(t, BoolFalse, v4.GloballyReachable)

			v6 := r.IPv6()[0]
			assert.Equal(t, "fd12:3456::/32", v6.AddressBlock)
			assert.Equal(t, "Unique-Local", v6.Name)
		})
	}
}

func TestLoadRecords_YAMLValues(t *testing.T) {
	recs, err := LoadRecords([]byte(yamlData), FormatYAML)
	require.NoError(t, err)

	b, err := NewBlock(recs[0])
	require.NoError(t, err)
	assert.Equal(t, BoolTrue, b.Source)
	assert.Equal(t, "[RFC1918]", b.RFC)
	assert.Equal(t, TypeOther, b.Type)
	assert.True(t, b.Active())

	b, err = NewBlock(recs[1])
	require.NoError(t, err)
	assert.Equal(t, BoolTrue, b.Forwardable)
	assert.Equal(t, TypeRegistry, b.Type)
}

func TestLoadRecords_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   error
	}{
		{"unsupported format", "blocks: []", Format("toml"), ErrUnsupportedFormat},
		{"malformed yaml", "blocks: [", FormatYAML, ErrParseFailed},
		{"malformed json", "{", FormatJSON, ErrParseFailed},
		{"missing blocks", "other: 1", FormatYAML, ErrParseFailed},
		{"blocks not a list", "blocks: foo", FormatYAML, ErrParseFailed},
		{"scalar item", "blocks:\n  - 10.0.0.0/8\n", FormatYAML, ErrParseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := LoadRecords([]byte(tt.data), tt.format)
			assert.Nil(t, recs)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadRecords_Empty(t *testing.T) {
	recs, err := LoadRecords(nil, FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, recs)

	recs, err = LoadRecords([]byte("blocks: []"), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

// 加载的记录与内置表格一样经过字段白名单检查。
func TestLoadRecords_StrictBuild(t *testing.T) {
	recs, err := LoadRecords([]byte("blocks:\n  - addressBlock: 10.0.0.0/8\n    comment: x\n"), FormatYAML)
	require.NoError(t, err)

	_, err = Build(recs)
	assert.ErrorIs(t, err, ErrUnknownField)
}

// 额外记录放在内置表格之前，首个匹配规则下优先生效。
func TestLoadRecords_Precedence(t *testing.T) {
	extra, err := LoadRecords([]byte(jsonData), FormatJSON)
	require.NoError(t, err)

	r, err := Build(append(extra, Table()...))
	require.NoError(t, err)
	assert.Equal(t, len(extra)+len(Table()), r.Len())
	assert.Equal(t, "100.100.0.0/16", r.IPv4()[0].AddressBlock)
	assert.Equal(t, "fd12:3456::/32", r.IPv6()[0].AddressBlock)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "extra.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlData), 0o600))
	recs, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	jsonPath := filepath.Join(dir, "extra.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonData), 0o600))
	recs, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = LoadFile(filepath.Join(dir, "extra.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("other: 1"), 0o600))
	_, err = LoadFile(badPath)
	assert.ErrorIs(t, err, ErrParseFailed)
}
