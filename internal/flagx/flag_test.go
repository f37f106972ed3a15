package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-p", "8080", "-x", "junk"},
			allowed: []string{"-p"},
			want:    []string{"-p", "8080"},
		},
		{
			name:    "combined flag=value",
			args:    []string{"--config=conf.json", "-d=farm.db"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: []string{"-z"},
			want:    []string{},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-p", "8080"},
			allowed: []string{"-v", "-p"},
			want:    []string{"-v", "-p", "8080"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}
