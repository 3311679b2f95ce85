package main

import (
	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/sirupsen/logrus"
)

type hmacCmd struct {
	Key   string `arg:"" help:"The key, as base58 text, a path to it, or - to prompt."`
	Input string `arg:"" type:"path" default:"-" help:"The path to the message."`
}

func (cmd *hmacCmd) Run(g *Globals, log *logrus.Logger) error {
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	digest, err := keyedhash.HMAC(key, data)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"op": "hmac", "bytes": len(data)}).Debug("calculated hmac")

	return printDigest(g, digest[:])
}
