// Command dsa exercises the containers and sorts of this module from
// the command line: it sorts numbers, orders them through a linked
// list, or drains them from a heap, and prints the result as JSON.
//
// Configuration comes from flags, DSA_ prefixed environment variables
// and an optional config file:
//
//	dsa --command sort --algorithm quick --order desc 3 1 null 2
//	DSA_COMMAND=heap DSA_ORDER=max dsa --values 5,4,3
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	conf, err := InitConfig(os.Args[1:])
	if err != nil {
		logrus.WithError(err).Error("could not read configuration")
		os.Exit(1)
	}

	logger, err := InitLogger(os.Stderr, conf.GetString("log.level"))
	if err != nil {
		logrus.WithError(err).Error("could not configure logging")
		os.Exit(1)
	}

	if err := Run(conf, logger, os.Stdout); err != nil {
		logger.WithError(err).WithField("prefix", "dsa").Error("command failed")
		os.Exit(1)
	}
}
