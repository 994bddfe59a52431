// Package health is the advisory statistical watchdog over the emitted
// word stream.
//
// The monitor is an asynchronous, lossy consumer: the generator hands it
// samples with a non-blocking send and keeps going whether or not the
// monitor keeps up. It never mutates generation state and is never on the
// blocking path of word production.
//
// Degradation is data, not an error: callers read the latest Report and
// decide for themselves whether to reseed or escalate.
package health
