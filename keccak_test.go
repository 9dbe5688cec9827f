package keccak

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func TestKeccak256Empty(t *testing.T) {
	got := Keccak256(nil)
	// Known Keccak-256 of empty string.
	want, _ := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(nil) = %x, want %x", got, want)
	}
}

func TestKeccak256Hello(t *testing.T) {
	got := Keccak256([]byte("hello"))
	want, _ := hex.DecodeString("1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(hello) = %x, want %x", got, want)
	}
}

func TestDigestKnownAnswers(t *testing.T) {
	vectors := []struct {
		level int
		msg   string
		want  string
	}{
		{224, "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
		{256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{384, "", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
		{512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
		{224, "abc", "e642824c3f8cf24ad09234ee7d3c766fc9a3a5168d0c94ad73b46fdf"},
		{256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{384, "abc", "ec01498288516fc926459f58e2c6ad8df9b473cb0fc08c2596da7cf0e49be4b298d88cea927ac7f539f1edf228376d25"},
		{512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	}
	for _, v := range vectors {
		t.Run(fmt.Sprintf("SHA3-%d/%q", v.level, v.msg), func(t *testing.T) {
			got, err := Digest(v.level, []byte(v.msg))
			require.NoError(t, err)
			require.Equal(t, v.want, hex.EncodeToString(got))
		})
	}
}

func TestShakeKnownAnswers(t *testing.T) {
	got, err := Shake(128, 256, nil)
	require.NoError(t, err)
	require.Equal(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26", hex.EncodeToString(got))

	got, err = Shake(256, 512, nil)
	require.NoError(t, err)
	require.Equal(t, "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762f"+
		"d75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be", hex.EncodeToString(got))
}

func TestRawShakeKnownAnswers(t *testing.T) {
	// Computed with an independent Keccak-f model padded with 0x07, the same
	// model reproducing hashlib's SHAKE128 and SHA3-256.
	vectors := []struct {
		level int
		msg   string
		want  string
	}{
		{128, "", "fa019a3b17630df6014853b5470773f13c3ab704478211d7a65867515dea1cc7"},
		{128, "abc", "a6a28e204739a01df50e70f71e0b4e8a1291a467af4e37ab8abdbff6ed106f3e"},
		{256, "abc", "4728c808aaa9ed605826afa0f2c60fbba7eb9988d0a09a97f6dc91c7ec3797e7" +
			"c99f00915a9aece81e99b8284ff58752553d7f1b3c736225f7ae72d90386e04b"},
	}
	for _, v := range vectors {
		got, err := RawShake(v.level, 4*len(v.want), []byte(v.msg))
		require.NoError(t, err)
		require.Equal(t, v.want, hex.EncodeToString(got), "RawSHAKE%d(%q)", v.level, v.msg)
	}
}

func TestPublishedTestVectorStrings(t *testing.T) {
	got, err := Digest(256, []byte("Test vector sha3-256"))
	require.NoError(t, err)
	want := sha3.Sum256([]byte("Test vector sha3-256"))
	require.Equal(t, want[:], got)

	got, err = Shake(256, 256, []byte("Shake256 test vector"))
	require.NoError(t, err)
	ref := make([]byte, 32)
	sha3.ShakeSum256(ref, []byte("Shake256 test vector"))
	require.Equal(t, ref, got)
}

func TestShakeAgainstXCrypto(t *testing.T) {
	msgs := [][]byte{nil, []byte("abc"), make([]byte, 167), make([]byte, 168), make([]byte, 169), make([]byte, 1000)}
	for _, msg := range msgs {
		for _, n := range []int{0, 1, 32, 167, 168, 169, 500} {
			got128, err := Shake(128, 8*n, msg)
			require.NoError(t, err)
			want := make([]byte, n)
			sha3.ShakeSum128(want, msg)
			require.Equal(t, want, got128, "SHAKE128 len(msg)=%d n=%d", len(msg), n)

			got256, err := Shake(256, 8*n, msg)
			require.NoError(t, err)
			sha3.ShakeSum256(want, msg)
			require.Equal(t, want, got256, "SHAKE256 len(msg)=%d n=%d", len(msg), n)
		}
	}
}

func TestFixedLength(t *testing.T) {
	for _, msg := range [][]byte{nil, {}, []byte("a"), make([]byte, 136), make([]byte, 4096)} {
		d, err := Digest(256, msg)
		require.NoError(t, err)
		require.Len(t, d, 32)
	}
}

func TestDeterminism(t *testing.T) {
	msg := []byte("the same message twice")
	a, err := Shake(256, 1000, msg)
	require.NoError(t, err)
	b, err := Shake(256, 1000, msg)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestXOFPrefix(t *testing.T) {
	msg := []byte("prefix property")
	long, err := Shake(128, 8*1000, msg)
	require.NoError(t, err)
	for _, n := range []int{0, 1, 100, 168, 169, 336, 999} {
		short, err := Shake(128, 8*n, msg)
		require.NoError(t, err)
		require.Equal(t, long[:n], short)
	}

	raw, err := RawShake(256, 8*300, msg)
	require.NoError(t, err)
	rawShort, err := RawShake(256, 8*137, msg)
	require.NoError(t, err)
	require.Equal(t, raw[:137], rawShort)
}

func TestZeroLengthOutput(t *testing.T) {
	out, err := Shake(128, 0, []byte("abc"))
	require.NoError(t, err)
	require.Empty(t, out)

	out, err = Keccak([]byte("abc"), 0, 512)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPartialByteOutput(t *testing.T) {
	full, err := Shake(128, 16, []byte("abc"))
	require.NoError(t, err)
	part, err := Shake(128, 12, []byte("abc"))
	require.NoError(t, err)
	require.Len(t, part, 2)
	require.Equal(t, full[0], part[0])
	require.Equal(t, full[1]&0x0f, part[1])
}

func TestDomainSeparation(t *testing.T) {
	msg := []byte("domain")
	sha, err := Digest(256, msg)
	require.NoError(t, err)
	shake, err := Shake(128, 256, msg)
	require.NoError(t, err)
	raw, err := RawShake(128, 256, msg)
	require.NoError(t, err)
	bare, err := Keccak(msg, 256, 256)
	require.NoError(t, err)

	outs := [][]byte{sha, shake, raw, bare}
	for i := range outs {
		for j := i + 1; j < len(outs); j++ {
			require.NotEqual(t, outs[i], outs[j], "outputs %d and %d collide", i, j)
		}
	}
}

func TestKeccakMatchesLegacy(t *testing.T) {
	msg := []byte("hello world, this is a longer test string for streaming keccak")
	got, err := Keccak(msg, 256, 512)
	require.NoError(t, err)
	want := Keccak256(msg)
	require.Equal(t, want[:], got)

	ref := sha3.NewLegacyKeccak512()
	ref.Write(msg)
	k512 := Keccak512(msg)
	require.Equal(t, ref.Sum(nil), k512[:])
}

func TestSumArrays(t *testing.T) {
	msg := []byte("fixed arrays")
	a224, a256, a384, a512 := sha3.Sum224(msg), sha3.Sum256(msg), sha3.Sum384(msg), sha3.Sum512(msg)
	require.Equal(t, a224, Sum224(msg))
	require.Equal(t, a256, Sum256(msg))
	require.Equal(t, a384, Sum384(msg))
	require.Equal(t, a512, Sum512(msg))
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := Digest(128, nil)
	require.ErrorIs(t, err, ErrInvalidLevel)

	_, err = Shake(512, 256, nil)
	require.ErrorIs(t, err, ErrInvalidLevel)

	_, err = Shake(128, -8, nil)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = RawShake(224, 8, nil)
	require.ErrorIs(t, err, ErrInvalidLevel)

	_, err = Keccak(nil, 256, 1600)
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Keccak(nil, 256, 13)
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Sum(Params{}, 256, nil)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = Sum(params256, 512, nil)
	require.ErrorIs(t, err, ErrInvalidLength)

	// Same invalid input, same failure.
	_, err2 := Sum(params256, 512, nil)
	require.Equal(t, err.Error(), err2.Error())
}

func TestMessageNotMutated(t *testing.T) {
	msg := []byte("do not touch")
	orig := append([]byte(nil), msg...)
	_, err := Digest(512, msg)
	require.NoError(t, err)
	require.Equal(t, orig, msg)
}

func FuzzDigest(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add([]byte("hello world, this is a longer test string for streaming keccak"))
	f.Add(make([]byte, 136))
	f.Add(make([]byte, 137))
	f.Add(make([]byte, 72*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Reference: x/crypto.
		want256 := sha3.Sum256(data)
		got, err := Digest(256, data)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want256[:]) {
			t.Fatalf("SHA3-256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want256)
		}

		want512 := sha3.Sum512(data)
		got, _ = Digest(512, data)
		if !bytes.Equal(got, want512[:]) {
			t.Fatalf("SHA3-512 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want512)
		}

		ref := sha3.NewLegacyKeccak256()
		ref.Write(data)
		wantK := ref.Sum(nil)
		gotK := Keccak256(data)
		if !bytes.Equal(gotK[:], wantK) {
			t.Fatalf("Keccak256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), gotK, wantK)
		}
	})
}

// Comparison benchmarks against golang.org/x/crypto/sha3.
var benchSizes = []int{32, 128, 256, 1024, 4096}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func BenchmarkDigest256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Digest(256, data)
			}
		})
	}
}

func BenchmarkXCrypto(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sha3.Sum256(data)
			}
		})
	}
}
