package main

import (
	"errors"

	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/sirupsen/logrus"
)

var errInvalidTag = errors.New("invalid tag")

type verifyCmd struct {
	Key   string `arg:"" help:"The key, as base58 text, a path to it, or - to prompt."`
	Tag   string `arg:"" help:"The expected tag, in the selected encoding."`
	Input string `arg:"" type:"path" default:"-" help:"The path to the message."`
	HMAC  bool   `name:"hmac" help:"Verify an HMAC instead of a MAC."`
}

func (cmd *verifyCmd) Run(g *Globals, log *logrus.Logger) error {
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	tag, err := decode(g.Encoding, cmd.Tag)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	verify := keyedhash.VerifyMAC
	if cmd.HMAC {
		verify = keyedhash.VerifyHMAC
	}

	ok, err := verify(key, data, tag)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"hmac": cmd.HMAC, "bytes": len(data), "valid": ok}).Debug("verified tag")

	if !ok {
		return errInvalidTag
	}

	return nil
}
