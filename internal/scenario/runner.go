package scenario

import (
	"fmt"
	"github.com/gostonefire/chainedhashmap"
	"github.com/gostonefire/chainedhashmap/hashfunc"
	"github.com/gostonefire/chainedhashmap/internal/conf"
	"go.uber.org/zap"
	"io"
	"strconv"
)

// absent - Printed by get when the key is not stored
const absent = "<absent>"

// Runner - Runs the operations of a scenario against a freshly created table and reports one line per operation
type Runner struct {
	scenario conf.Scenario
	logger   *zap.Logger
	out      io.Writer
}

// NewRunner - Returns a pointer to a new Runner
//   - scenario is a validated scenario, see conf.LoadScenario
//   - logger receives one debug entry per operation and a summary
//   - out receives the result lines
func NewRunner(scenario conf.Scenario, logger *zap.Logger, out io.Writer) *Runner {
	return &Runner{
		scenario: scenario,
		logger:   logger,
		out:      out,
	}
}

// Run - Creates the table and runs every operation in order.
// It stops at the first failed expectation and returns an error describing it.
func (R *Runner) Run() (err error) {
	tc := R.scenario.Table
	R.logger.Info("running scenario",
		zap.Int64("capacity", tc.Capacity),
		zap.String("keyType", tc.KeyType),
		zap.String("hash", tc.Hash),
		zap.Int("operations", len(R.scenario.Ops)))

	var stat *chainedhashmap.HashMapStat
	switch tc.KeyType {
	case conf.KeyTypeInt:
		table := chainedhashmap.NewIntegerTable[int64, string](tc.Capacity)
		stat, err = runOperations(R, table, parseIntKey)
	case conf.KeyTypeString:
		var hasher hashfunc.KeyHasher[string]
		if tc.Hash == conf.HashXXHash {
			hasher = chainedhashmap.NewXXHashAlgorithm[string]()
		} else {
			hasher = chainedhashmap.NewCRC32HashAlgorithm[string]()
		}
		table := chainedhashmap.New[string, string](tc.Capacity, hasher)
		stat, err = runOperations(R, table, parseStringKey)
	default:
		err = fmt.Errorf("unsupported key type %q", tc.KeyType)
	}

	if err != nil {
		R.logger.Error("scenario failed", zap.Error(err))
		return
	}

	R.logger.Info("scenario completed",
		zap.Int64("records", stat.Records),
		zap.Int64("occupiedBuckets", stat.OccupiedBuckets),
		zap.Int64("longestChain", stat.LongestChain),
		zap.Float64("loadFactor", stat.LoadFactor))

	return
}

func parseIntKey(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseStringKey(s string) (string, error) {
	return s, nil
}

// runOperations - Runs the scenario operations against table, keys are parsed from their configured text form
//
// It returns:
//   - stat is the table statistics after the last operation
//   - err is a standard error if a key could not be parsed, or if an expectation failed
func runOperations[K any](R *Runner, table *chainedhashmap.Table[K, string], parseKey func(string) (K, error)) (stat *chainedhashmap.HashMapStat, err error) {
	var key K
	var result string
	for i, op := range R.scenario.Ops {
		if op.Kind != conf.OpStat {
			key, err = parseKey(op.Key)
			if err != nil {
				err = fmt.Errorf("error while parsing key of operation #%d: %s", i+1, err)
				return
			}
		}

		switch op.Kind {
		case conf.OpSet:
			table.Set(key, op.Value)
			_, err = fmt.Fprintf(R.out, "set %s=%s\n", op.Key, op.Value)
		case conf.OpAdd:
			result = strconv.FormatBool(table.Add(key, op.Value))
			_, err = fmt.Fprintf(R.out, "add %s=%s -> %s\n", op.Key, op.Value, result)
		case conf.OpHas:
			result = strconv.FormatBool(table.Has(key))
			_, err = fmt.Fprintf(R.out, "has %s -> %s\n", op.Key, result)
		case conf.OpGet:
			value, found := table.Get(key)
			result = absent
			if found {
				result = value
			}
			_, err = fmt.Fprintf(R.out, "get %s -> %s\n", op.Key, result)
			if err == nil && !found && op.Expect != "" && op.Expect != absent {
				err = fmt.Errorf("operation #%d get %s expected %q: %w", i+1, op.Key, op.Expect, chainedhashmap.NoRecordFound{})
				return
			}
		case conf.OpStat:
			s := table.Stat(false)
			_, err = fmt.Fprintf(R.out, "stat records=%d buckets=%d occupied=%d longest=%d load=%.4f\n",
				s.Records, s.NumberOfBuckets, s.OccupiedBuckets, s.LongestChain, s.LoadFactor)
		default:
			err = fmt.Errorf("unsupported operation kind %q", op.Kind)
		}
		if err != nil {
			return
		}

		R.logger.Debug("operation done",
			zap.Int("no", i+1),
			zap.String("kind", op.Kind),
			zap.String("key", op.Key),
			zap.String("result", result),
			zap.Int64("len", table.Len()))

		if op.Expect != "" && op.Kind != conf.OpSet && op.Kind != conf.OpStat && result != op.Expect {
			err = fmt.Errorf("operation #%d %s %s expected %q, got %q", i+1, op.Kind, op.Key, op.Expect, result)
			return
		}
		result = ""
	}

	stat = table.Stat(false)

	return
}
