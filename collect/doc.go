// Package collect gathers per-tick time series from a running simulation.
//
// A Collector holds named reporters: model reporters sample one value per
// tick, agent reporters sample one value per agent per tick. The simulation
// runner calls Collect once after every completed tick; downstream consumers
// (plotting layers, analysis code) read the accumulated series. Nothing is
// persisted to disk.
package collect
