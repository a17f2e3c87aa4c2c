package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdcheck/pkg/lint"
)

type sampleOptions struct {
	Style  string `mapstructure:"style"`
	Indent int    `mapstructure:"indent"`
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]any
		want    sampleOptions
		wantErr bool
	}{
		{
			name: "absent keeps defaults",
			raw:  nil,
			want: sampleOptions{Style: "consistent", Indent: 2},
		},
		{
			name: "partial override",
			raw:  map[string]any{"indent": 4},
			want: sampleOptions{Style: "consistent", Indent: 4},
		},
		{
			name: "weakly typed string number",
			raw:  map[string]any{"indent": "3"},
			want: sampleOptions{Style: "consistent", Indent: 3},
		},
		{
			name:    "unknown key",
			raw:     map[string]any{"indnet": 4},
			wantErr: true,
		},
		{
			name:    "not a number",
			raw:     map[string]any{"indent": "wide"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := sampleOptions{Style: "consistent", Indent: 2}
			err := lint.DecodeOptions(tt.raw, &opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, opts)
		})
	}
}

func TestOptionsMap(t *testing.T) {
	got, err := lint.OptionsMap(&sampleOptions{Style: "dash", Indent: 2})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"style": "dash", "indent": 2}, got)

	none, err := lint.OptionsMap(nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestRuleContext_LoadOptionsKeepsDefaultsOnError(t *testing.T) {
	ctx := lint.NewRuleContext(context.Background(), nil, map[string]any{"indent": "wide"})

	opts := sampleOptions{Style: "consistent", Indent: 2}
	ctx.LoadOptions(&opts)

	assert.Equal(t, 2, opts.Indent)
	assert.Empty(t, ctx.Lines())
}

type boundedOptions struct {
	Indent int `mapstructure:"indent"`
}

func (o *boundedOptions) Validate() error {
	if o.Indent < 1 {
		return errors.New("indent must be positive")
	}
	return nil
}

func TestDecodeOptions_RunsValidator(t *testing.T) {
	opts := &boundedOptions{Indent: 2}
	require.NoError(t, lint.DecodeOptions(map[string]any{"indent": 4}, opts))
	assert.Equal(t, 4, opts.Indent)

	err := lint.DecodeOptions(map[string]any{"indent": 0}, opts)
	assert.ErrorContains(t, err, "indent must be positive")
	assert.Equal(t, 4, opts.Indent, "rejected options must not leak into the target")
}

func TestDecodeOptions_LeavesTargetUnchangedOnError(t *testing.T) {
	opts := sampleOptions{Style: "consistent", Indent: 2}

	err := lint.DecodeOptions(map[string]any{"style": "dash", "indent": "wide"}, &opts)
	require.Error(t, err)
	assert.Equal(t, sampleOptions{Style: "consistent", Indent: 2}, opts)

	err = lint.DecodeOptions(map[string]any{"indent": 1}, opts)
	assert.ErrorContains(t, err, "non-nil pointer")
}

func TestRuleContext_LoadOptionsKeepsDefaultsOnValidationError(t *testing.T) {
	ctx := lint.NewRuleContext(context.Background(), nil, map[string]any{"indent": 0})

	opts := &boundedOptions{Indent: 2}
	ctx.LoadOptions(opts)

	assert.Equal(t, 2, opts.Indent)
}
