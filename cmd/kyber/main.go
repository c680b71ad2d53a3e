// Command kyber is the text front end for the Kyber IND-CPA primitive: it
// generates key pairs and encrypts and decrypts 32-byte messages, exchanging
// all blobs as Base64 text.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/primelattice/kyber"
	"github.com/primelattice/kyber/utils/sampling"
)

func main() {
	app := &cli.App{
		Name:  "kyber",
		Usage: "Kyber lattice-based public-key encryption (IND-CPA, k=3, q=7681)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log key fingerprints to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "gen",
				Usage:  "generate a key pair and print it as Base64",
				Action: runGen,
			},
			{
				Name:      "enc",
				Usage:     "encrypt a 32-byte Base64 message under a public key",
				ArgsUsage: "<public-key> <plaintext>",
				Action:    runEnc,
			},
			{
				Name:      "dec",
				Usage:     "decrypt a Base64 ciphertext under a secret key",
				ArgsUsage: "<secret-key> <ciphertext>",
				Action:    runDec,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logger(c *cli.Context) zerolog.Logger {
	level := zerolog.WarnLevel
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// drawSeed reads 32 fresh bytes from the system-entropy-keyed PRNG.
func drawSeed(prng *sampling.KeyedPRNG) (kyber.Seed, error) {
	var seed kyber.Seed
	if _, err := prng.Read(seed[:]); err != nil {
		return kyber.Seed{}, fmt.Errorf("cannot draw seed: %w", err)
	}
	return seed, nil
}

func runGen(c *cli.Context) error {
	log := logger(c)

	prng, err := sampling.NewPRNG()
	if err != nil {
		return cli.Exit(err, 1)
	}
	matrixSeed, err := drawSeed(prng)
	if err != nil {
		return cli.Exit(err, 1)
	}
	secretSeed, err := drawSeed(prng)
	if err != nil {
		return cli.Exit(err, 1)
	}

	sk, pk := kyber.KeyGen(matrixSeed, secretSeed)
	log.Debug().
		Str("public", pk.Fingerprint()).
		Str("secret", sk.Fingerprint()).
		Msg("generated key pair")

	pkText, err := kyber.WritePublicKey(pk)
	if err != nil {
		return cli.Exit(err, 1)
	}
	skText, err := kyber.WriteSecretKey(sk)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Printf("Public key is %s\n", pkText)
	fmt.Printf("Secret key is %s\n", skText)
	return nil
}

func runEnc(c *cli.Context) error {
	log := logger(c)
	if c.NArg() < 2 {
		return cli.Exit("usage: kyber enc <public-key> <plaintext>\n"+
			"  the plaintext is 32 Base64-encoded bytes; longer messages are allowed, only the prefix is used", 1)
	}

	pk, err := kyber.ReadPublicKey(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}
	message, err := kyber.ReadMessage(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		return cli.Exit(err, 1)
	}
	encSeed, err := drawSeed(prng)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ct := kyber.Encrypt(pk, message, encSeed)
	log.Debug().Str("public", pk.Fingerprint()).Msg("encrypted message")

	ctText, err := kyber.WriteCiphertext(ct)
	if err != nil {
		return cli.Exit(err, 1)
	}
	fmt.Printf("Ciphertext is %s\n", ctText)
	return nil
}

func runDec(c *cli.Context) error {
	log := logger(c)
	if c.NArg() < 2 {
		return cli.Exit("usage: kyber dec <secret-key> <ciphertext>", 1)
	}

	sk, err := kyber.ReadSecretKey(c.Args().Get(0))
	if err != nil {
		return cli.Exit(err, 1)
	}
	ct, err := kyber.ReadCiphertext(c.Args().Get(1))
	if err != nil {
		return cli.Exit(err, 1)
	}

	message := kyber.Decrypt(sk, ct)
	log.Debug().Str("secret", sk.Fingerprint()).Msg("decrypted message")

	fmt.Printf("Plaintext is %s\n", kyber.WriteMessage(message))
	return nil
}
