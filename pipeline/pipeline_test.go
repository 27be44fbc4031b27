package pipeline

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolapps/convert"
	"toolapps/decode"
)

func TestDigest(t *testing.T) {
	got, err := Digest("test", "")
	require.NoError(t, err)
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", got)

	got, err = Digest("<script></script>", "md5")
	require.NoError(t, err)
	assert.Len(t, got, 32)

	_, err = Digest("test", "gzip")
	var ce *convert.ConversionError
	assert.True(t, errors.As(err, &ce))
}

func TestBuildAndRun(t *testing.T) {
	p, err := Build("b64-gzip-roundtrip", Definition{
		Decode:  "base64",
		Convert: ParseStages("gzip, gzip-d"),
		Encode:  "utf8",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gzip", "gzip-d"}, p.StageNames())

	out, err := p.Run("aGVsbG8gd29ybGQ=")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestDefaults(t *testing.T) {
	p, err := Build("", Definition{})
	require.NoError(t, err)
	assert.Equal(t, "utf8", p.DecoderName)
	assert.Equal(t, "hex", p.EncoderName)

	out, err := p.Run("AB")
	require.NoError(t, err)
	assert.Equal(t, "4142", out)

	var bare Pipeline
	out, err = bare.Run("AB")
	require.NoError(t, err)
	assert.Equal(t, "4142", out)
}

func TestStageErrors(t *testing.T) {
	p, err := Build("p", Definition{Decode: "hex", Convert: ParseStages("zstd-d")})
	require.NoError(t, err)

	_, err = p.Run("xyz")
	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "decode", se.Stage)
	var de *decode.DecodeError
	assert.True(t, errors.As(err, &de))

	_, err = p.Run("00ff00ff")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "convert[0]", se.Stage)
	assert.Equal(t, "zstd-d", se.Name)
	var ce *convert.ConversionError
	assert.True(t, errors.As(err, &ce))
}

func TestBuildUnknownNames(t *testing.T) {
	tests := []struct {
		def   Definition
		stage string
	}{
		{Definition{Decode: "rot13"}, "decode"},
		{Definition{Convert: ParseStages("sha256,rot13")}, "convert[1]"},
		{Definition{Encode: "rot13"}, "encode"},
	}
	for i, tc := range tests {
		_, err := Build("x", tc.def)
		var se *StageError
		require.True(t, errors.As(err, &se), "case %d", i)
		assert.Equal(t, tc.stage, se.Stage, "case %d", i)
	}
}

func TestParseStages(t *testing.T) {
	assert.Empty(t, ParseStages(""))
	assert.Equal(t, []StageDefinition{{Name: "a"}, {Name: "b"}}, ParseStages(" a,,b "))
}

func TestConcurrentRuns(t *testing.T) {
	p, err := Build("c", Definition{Convert: ParseStages("brotli,brotli-d,sha256"), Encode: "base64"})
	require.NoError(t, err)
	expect, err := p.Run("payload")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Run("payload")
			assert.NoError(t, err)
			assert.Equal(t, expect, got)
		}()
	}
	wg.Wait()
}
