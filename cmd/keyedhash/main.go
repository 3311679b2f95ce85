package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type Globals struct {
	Verbose  bool   `short:"v" env:"KEYEDHASH_VERBOSE" help:"Log operations to stderr."`
	Encoding string `short:"e" env:"KEYEDHASH_ENCODING" enum:"hex,base58,base64" default:"hex" help:"The digest encoding (hex, base58, base64)."`
}

type cli struct {
	Globals

	Key    keyCmd    `cmd:"" help:"Generate a new random key."`
	Hash   hashCmd   `cmd:"" help:"Hash a message."`
	MAC    macCmd    `cmd:"" name:"mac" help:"Calculate the MAC of a message."`
	HMAC   hmacCmd   `cmd:"" name:"hmac" help:"Calculate the HMAC of a message."`
	Verify verifyCmd `cmd:"" help:"Verify the MAC or HMAC of a message."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli,
		kong.Name("keyedhash"),
		kong.Description("Hash, MAC, and HMAC messages with BLAKE2b."))

	log := newLogger(cli.Verbose)

	err := ctx.Run(&cli.Globals, log)
	if err != nil {
		log.WithError(err).WithField("command", ctx.Command()).Debug("command failed")
	}

	ctx.FatalIfErrorf(err)
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

var errInvalidKey = fmt.Errorf("invalid key: must be %d bytes of base58 text", keyedhash.KeySize)

// decodeKey decodes a base58 key given directly, read from a file, or, for "-", typed at the
// terminal.
func decodeKey(pathOrKey string) ([]byte, error) {
	if pathOrKey == "-" {
		text, err := askKey("Enter key: ")
		if err != nil {
			return nil, err
		}

		return parseKey(text)
	}

	// Try decoding the key directly.
	if key, err := parseKey([]byte(pathOrKey)); err == nil {
		return key, nil
	}

	// Otherwise, try reading the contents of it as a file.
	b, err := os.ReadFile(pathOrKey)
	if err != nil {
		return nil, err
	}

	return parseKey(b)
}

func parseKey(text []byte) ([]byte, error) {
	key, err := base58.Decode(strings.TrimSpace(string(text)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidKey, err)
	}

	if len(key) != keyedhash.KeySize {
		return nil, errInvalidKey
	}

	return key, nil
}

func askKey(prompt string) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	return term.ReadPassword(int(os.Stdin.Fd()))
}

func encode(encoding string, b []byte) string {
	switch encoding {
	case "base58":
		return base58.Encode(b)
	case "base64":
		return base64.StdEncoding.EncodeToString(b)
	default:
		return hex.EncodeToString(b)
	}
}

var errInvalidEncoding = errors.New("invalid encoding")

func decode(encoding, s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	switch encoding {
	case "base58":
		return base58.Decode(s)
	case "base64":
		return base64.StdEncoding.DecodeString(s)
	case "hex":
		return hex.DecodeString(s)
	default:
		return nil, errInvalidEncoding
	}
}

// readInput reads the whole message from the given path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return os.Stdout, nil
	}

	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
}

func printDigest(g *Globals, digest []byte) error {
	_, err := fmt.Fprintln(os.Stdout, encode(g.Encoding, digest))

	return err
}
