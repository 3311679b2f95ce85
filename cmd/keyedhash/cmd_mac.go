package main

import (
	"github.com/codahale/keyedhash/pkg/keyedhash"
	"github.com/sirupsen/logrus"
)

type macCmd struct {
	Key   string `arg:"" help:"The key, as base58 text, a path to it, or - to prompt."`
	Input string `arg:"" type:"path" default:"-" help:"The path to the message."`
	Short bool   `help:"Calculate a 16-byte tag."`
}

func (cmd *macCmd) Run(g *Globals, log *logrus.Logger) error {
	key, err := decodeKey(cmd.Key)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.Input)
	if err != nil {
		return err
	}

	fields := logrus.Fields{"bytes": len(data)}

	if cmd.Short {
		tag, err := keyedhash.MAC16(key, data)
		if err != nil {
			return err
		}

		log.WithFields(fields).WithField("op", "mac16").Debug("calculated tag")

		return printDigest(g, tag[:])
	}

	tag, err := keyedhash.MAC(key, data)
	if err != nil {
		return err
	}

	log.WithFields(fields).WithField("op", "mac").Debug("calculated tag")

	return printDigest(g, tag[:])
}
