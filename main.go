package main

import (
	"log"
	"os"

	"git.lost.host/meutraa/encore/internal/config"
	"git.lost.host/meutraa/encore/internal/logger"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	lg, closer, err := logger.New(cfg.LogFile, cfg.Debug)
	if nil != err {
		return err
	}
	defer closer.Close()
	lg.WithField("version", config.Version).Info("starting")

	p := NewProgram(cfg, lg)
	if cfg.History {
		return p.History(os.Stdout)
	}
	if err := p.Init(); nil != err {
		p.close()
		return err
	}
	if err := p.Run(); nil != err {
		p.close()
		return err
	}
	return p.Finish()
}
