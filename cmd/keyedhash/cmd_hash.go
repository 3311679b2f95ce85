package main

import (
	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/sirupsen/logrus"
)

type hashCmd struct {
	Input string `arg:"" type:"path" default:"-" help:"The path to the message."`
}

func (cmd *hashCmd) Run(g *Globals, log *logrus.Logger) error {
	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	digest, err := keyedhash.Hash(data)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"op": "hash", "bytes": len(data)}).Debug("hashed message")

	return printDigest(g, digest[:])
}
