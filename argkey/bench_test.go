package argkey_test

import (
	"testing"

	"github.com/hasbyte1/go-fnutils/argkey"
)

var benchArgs = []any{"user", 42, map[string]any{"role": "admin", "tags": []string{"a", "b"}}}

func benchmarkKeyer(b *testing.B, k argkey.Keyer) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := k.Key(benchArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJSONKeyer(b *testing.B) { benchmarkKeyer(b, argkey.NewJSONKeyer()) }

func BenchmarkBlake2bKeyer(b *testing.B) {
	k, err := argkey.NewBlake2bKeyer(argkey.DefaultBlake2bOptions())
	if err != nil {
		b.Fatal(err)
	}
	benchmarkKeyer(b, k)
}

func BenchmarkXXHashKeyer(b *testing.B) { benchmarkKeyer(b, argkey.NewXXHashKeyer()) }
