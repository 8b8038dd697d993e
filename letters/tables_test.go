package letters_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kinetic/grid"
	"github.com/katalvlaran/kinetic/letters"
	"github.com/katalvlaran/kinetic/motion"
)

// TestDefaultType1Tables checks the built-in tables validate and are copies.
func TestDefaultType1Tables(t *testing.T) {
	tables := letters.DefaultType1Tables()
	require.NoError(t, tables.Validate())
	assert.Len(t, tables.Letters(), 22)

	tables[letters.AlphaToAlpha]["A"] = letters.LetterConfig{}
	fresh := letters.DefaultType1Tables()
	assert.NotEmpty(t, fresh[letters.AlphaToAlpha]["A"].MotionPairs)

	sys, ok := fresh.SystemOf("S")
	assert.True(t, ok)
	assert.Equal(t, letters.GammaToGamma, sys)
	assert.Equal(t, 4, fresh[letters.AlphaToAlpha]["C"].Combinations())
}

// TestTablesValidate lists the defects a table may carry.
func TestTablesValidate(t *testing.T) {
	good := letters.LetterConfig{Start: alpha1, MotionPairs: []letters.MotionPair{proPro}, RotationPairs: matching}
	cases := map[string]letters.Tables{
		"unknown system": {"delta_to_delta": {"A": good}},
		"wrong family": {letters.BetaToBeta: {"A": good}},
		"box start": {letters.AlphaToAlpha: {"A": {
			Start: grid.Position{System: grid.Alpha, Index: 2}, MotionPairs: good.MotionPairs, RotationPairs: matching}}},
		"float motion": {letters.AlphaToAlpha: {"A": {
			Start: alpha1, MotionPairs: []letters.MotionPair{{Blue: motion.Float, Red: motion.Pro}}, RotationPairs: matching}}},
		"no rotation": {letters.AlphaToAlpha: {"A": {
			Start: alpha1, MotionPairs: good.MotionPairs, RotationPairs: []letters.RotationPair{{Blue: motion.NoRotation, Red: motion.Clockwise}}}}},
		"mixed rotation": {letters.AlphaToAlpha: {"A": {
			Start: alpha1, MotionPairs: good.MotionPairs, RotationPairs: mixed}}},
		"empty pairs": {letters.AlphaToAlpha: {"A": {Start: alpha1}}},
		"duplicate": {
			letters.AlphaToAlpha: {"A": good},
			letters.AlphaToBeta:  {"A": good},
		},
	}
	for name, tables := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, tables.Validate(), letters.ErrBadTable)
		})
	}
}

// TestLoadTables_RoundTrip writes the built-in tables and reads them back.
func TestLoadTables_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, letters.MarshalTables(&buf, letters.DefaultType1Tables()))
	assert.Contains(t, buf.String(), "start: gamma9")

	loaded, err := letters.LoadTables(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(letters.DefaultType1Tables(), loaded); diff != "" {
		t.Fatalf("tables changed (-want +got):\n%s", diff)
	}
}

// TestLoadTables_Document decodes a hand-written table.
func TestLoadTables_Document(t *testing.T) {
	doc := `
systems:
  beta_to_beta:
    " g ":
      start: beta1
      motions:
        - {blue: pro, red: pro}
      rotations:
        - {blue: cw, red: cw}
`
	tables, err := letters.LoadTables(strings.NewReader(doc))
	require.NoError(t, err)

	cfg, ok := tables[letters.BetaToBeta]["g"]
	require.True(t, ok)
	assert.Equal(t, grid.Position{System: grid.Beta, Index: 1}, cfg.Start)
	assert.Equal(t, []letters.MotionPair{proPro}, cfg.MotionPairs)
	assert.Equal(t, []letters.RotationPair{cwCW}, cfg.RotationPairs)
}

// TestLoadTables_Errors maps every defect to ErrBadTable.
func TestLoadTables_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":          ``,
		"no systems":     `systems: {}`,
		"unknown field":  "systems:\n  alpha_to_alpha:\n    A: {start: alpha1, colour: red}\n",
		"bad position":   "systems:\n  alpha_to_alpha:\n    A: {start: alpha9, motions: [{blue: pro, red: pro}], rotations: [{blue: cw, red: cw}]}\n",
		"mixed rotation": "systems:\n  alpha_to_alpha:\n    A: {start: alpha1, motions: [{blue: pro, red: pro}], rotations: [{blue: cw, red: ccw}]}\n",
		"bad motion":     "systems:\n  alpha_to_alpha:\n    A: {start: alpha1, motions: [{blue: spin, red: pro}], rotations: [{blue: cw, red: cw}]}\n",
		"unknown system": "systems:\n  omega:\n    A: {start: alpha1, motions: [{blue: pro, red: pro}], rotations: [{blue: cw, red: cw}]}\n",
		"not yaml":       "systems: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := letters.LoadTables(strings.NewReader(doc))
			assert.ErrorIs(t, err, letters.ErrBadTable)
		})
	}
}

// TestLoadTablesFile reports a missing file.
func TestLoadTablesFile(t *testing.T) {
	_, err := letters.LoadTablesFile(t.TempDir() + "/missing.yaml")
	assert.Error(t, err)
}

// TestParseLetter trims and normalises input.
func TestParseLetter(t *testing.T) {
	l, err := letters.ParseLetter("  A ")
	require.NoError(t, err)
	assert.Equal(t, letters.Letter("A"), l)

	l, err = letters.ParseLetter("é")
	require.NoError(t, err)
	assert.Equal(t, letters.Letter("é"), l)

	_, err = letters.ParseLetter("   ")
	assert.ErrorIs(t, err, letters.ErrUnsupportedLetter)
}

// TestPictographMotion selects a hand by color.
func TestPictographMotion(t *testing.T) {
	p := letters.Pictograph{
		Blue: motion.MotionData{Color: motion.Blue},
		Red:  motion.MotionData{Color: motion.Red},
	}
	m, ok := p.Motion(motion.Red)
	assert.True(t, ok)
	assert.Equal(t, motion.Red, m.Color)
	_, ok = p.Motion("green")
	assert.False(t, ok)
}
