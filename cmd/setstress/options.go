package main

import (
	"time"

	"github.com/P1x3lc0w/P1x3lc0w.Common/internal/stress"
)

// Options are parsed by github.com/jessevdk/go-flags
type Options struct {
	Writers  int           `short:"w" long:"writers"   description:"Number of goroutines adding and removing keys" default:"8"`
	Readers  int           `short:"r" long:"readers"   description:"Number of goroutines taking snapshots" default:"4"`
	Ops      int           `short:"n" long:"ops"       description:"Operations per writer" default:"10000"`
	KeySpace int           `short:"k" long:"key-space" description:"Keys are drawn from [0, key-space)" default:"256"`
	Seed     uint64        `short:"s" long:"seed"      description:"Random seed for the writers" default:"1"`
	Timeout  time.Duration `short:"t" long:"timeout"   description:"Abort the run after this long" default:"30s"`
}

func (o *Options) config() stress.Config {
	return stress.Config{
		Writers:  o.Writers,
		Readers:  o.Readers,
		Ops:      o.Ops,
		KeySpace: o.KeySpace,
		Seed:     o.Seed,
	}
}
