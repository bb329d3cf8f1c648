package cpu

import (
	"context"
	"os"

	"codeberg.org/mutker/pemon/internal/errors"
)

const (
	DefaultCPUInfoPath = "/proc/cpuinfo"
	DefaultStatPath    = "/proc/stat"
)

// Source supplies the raw CPU descriptor and counter table text.
type Source interface {
	ReadCPUInfo(ctx context.Context) (string, error)
	ReadStat(ctx context.Context) (string, error)
}

// ProcSource reads both tables from the proc filesystem.
type ProcSource struct {
	CPUInfoPath string
	StatPath    string
}

// NewProcSource returns a ProcSource, falling back to the standard proc
// paths for empty arguments.
func NewProcSource(cpuinfoPath, statPath string) *ProcSource {
	if cpuinfoPath == "" {
		cpuinfoPath = DefaultCPUInfoPath
	}
	if statPath == "" {
		statPath = DefaultStatPath
	}

	return &ProcSource{CPUInfoPath: cpuinfoPath, StatPath: statPath}
}

func (p *ProcSource) ReadCPUInfo(_ context.Context) (string, error) {
	return readFile(p.CPUInfoPath)
}

func (p *ProcSource) ReadStat(_ context.Context) (string, error) {
	return readFile(p.StatPath)
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.New().Wrap(ErrSourceRead, err)
	}

	return string(data), nil
}
