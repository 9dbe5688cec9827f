package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli/v2"

	keccak "github.com/Giulio2002/keccakp"
	"github.com/Giulio2002/keccakp/encoding"
)

type vector struct {
	algorithm string
	bits      int
	msg       string
	want      string
}

// Published FIPS 202 answers.
var vectors = []vector{
	{"sha3-224", 224, "", "6b4e03423667dbb73b6e15454f0eb1abd4597f9a1b078e3f5b5a6bc7"},
	{"sha3-256", 256, "", "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
	{"sha3-384", 384, "", "0c63a75b845e4f7d01107d852e4c2485c51a50aaaa94fc61995e71bbee983a2ac3713831264adb47fb6bd1e058d5f004"},
	{"sha3-512", 512, "", "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	{"sha3-256", 256, "abc", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	{"sha3-512", 512, "abc", "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0"},
	{"shake128", 256, "", "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26"},
	{"shake256", 512, "", "46b9dd2b0ba88d13233b3feb743eeb243fcd52ea62b81b82b50c27646ed5762fd75dc4ddd8c0f200cb05019d67b592f6fc821c49479ab48640292eacb3b7c4be"},
	{"keccak-256", 256, "", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
}

func vectorsCmd(c *cli.Context) error {
	var failed int
	for _, v := range vectors {
		p, err := keccak.Lookup(v.algorithm)
		if err != nil {
			return err
		}
		got, err := keccak.Sum(p, v.bits, []byte(v.msg))
		if err != nil {
			return err
		}
		want, err := encoding.DecodeHex(v.want)
		if err != nil {
			return err
		}
		status := "PASS"
		if !bytes.Equal(got, want) {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(c.App.Writer, "%s %s(%q, %d)\n", status, v.algorithm, v.msg, v.bits)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d vectors failed", failed, len(vectors)), 1)
	}
	return nil
}
