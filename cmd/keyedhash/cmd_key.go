package main

import (
	"crypto/rand"
	"fmt"

	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/sirupsen/logrus"
)

type keyCmd struct {
	Output string `arg:"" type:"path" default:"-" help:"The output path for the key."`
}

func (cmd *keyCmd) Run(_ *Globals, log *logrus.Logger) error {
	// Generate a new random key.
	key := make([]byte, keyedhash.KeySize)
	if _, err := rand.Read(key); err != nil {
		return err
	}

	// Open the output.
	dst, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}

	defer func() { _ = dst.Close() }()

	log.WithField("output", cmd.Output).Debug("generated key")

	// Encode the key and write it to the output.
	_, err = fmt.Fprintln(dst, encode("base58", key))

	return err
}
