package trainer

import (
	"io"
	"log"
	"os"
)

// SetLogger sets the output logger file where per epoch losses are written
func (c *Config) SetLogger(filename string) {
	outfile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		c.l = log.New(os.Stderr, "", log.LstdFlags)
		c.l.Println("trainer: cannot open log:", err)
		return
	}
	c.l = log.New(outfile, "", log.LstdFlags)
}

// SetOutput sends the epoch log to w.
func (c *Config) SetOutput(w io.Writer) {
	c.l = log.New(w, "", 0)
}

type Config struct {
	Threads   int     // number of worker goroutines
	BatchSize int     // pairs per StepBatch call
	Epochs    int     // passes over the pairs
	Alpha     float64 // learning rate, constant for the whole run

	Shuffle bool  // whether to shuffle the pairs before each epoch
	Seed    int64 // seed of the shuffling prng

	l *log.Logger
}

func (c *Config) logger() *log.Logger {
	if c.l == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.l
}

func (c Config) withDefaults() Config {
	if c.Threads <= 0 {
		c.Threads = 1
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 10000
	}
	if c.Epochs <= 0 {
		c.Epochs = 1
	}
	return c
}
