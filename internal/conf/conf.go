package conf

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/chainedhashmap"
	"github.com/gostonefire/chainedhashmap/internal/logutil"
	"github.com/xyproto/env/v2"
	"strconv"
	"strings"
)

// KeyTypeInt - Keys are parsed as 64 bit signed integers
const KeyTypeInt = "int"

// KeyTypeString - Keys are used as is
const KeyTypeString = "string"

// HashMod - The reference modulo bucket selection, only for integer keys
const HashMod = "mod"

// HashCRC32 - crc32 bucket selection, only for string keys
const HashCRC32 = "crc32"

// HashXXHash - xxhash bucket selection, only for string keys
const HashXXHash = "xxhash"

// Operation kinds
const (
	OpSet  = "set"
	OpAdd  = "add"
	OpHas  = "has"
	OpGet  = "get"
	OpStat = "stat"
)

// Environment variables overriding the log section of a scenario
const (
	EnvLogLevel  = "CHAINTAB_LOG_LEVEL"
	EnvLogFormat = "CHAINTAB_LOG_FORMAT"
	EnvLogFile   = "CHAINTAB_LOG_FILE"
)

// lookupEnv - Returns the value of the environment variable name, or def if not set
var lookupEnv = func(name, def string) string {
	return env.Str(name, def)
}

// TableConfig - Configuration of the table a scenario runs against
//   - Capacity is the fixed number of buckets
//   - KeyType is either int or string (default int)
//   - Hash is the bucket selection algorithm, mod for int keys (default), crc32 (default) or xxhash for string keys
type TableConfig struct {
	Capacity int64  `toml:"capacity"`
	KeyType  string `toml:"key_type"`
	Hash     string `toml:"hash"`
}

// Operation - One operation in a scenario
//   - Kind is one of set, add, has, get, stat
//   - Key is the key to operate on, not used by stat
//   - Value is the value to store for set and add
//   - Expect is an optional expected result, true/false for add and has, the value for get
type Operation struct {
	Kind   string `toml:"kind"`
	Key    string `toml:"key"`
	Value  string `toml:"value"`
	Expect string `toml:"expect"`
}

// Scenario - A table configuration together with the operations to run against it
type Scenario struct {
	Log   logutil.LogConfig `toml:"log"`
	Table TableConfig       `toml:"table"`
	Ops   []Operation       `toml:"op"`
}

// LoadScenario - Reads a scenario from a toml file, applies environment overrides and validates it
//   - fileName is the path of the scenario file
func LoadScenario(fileName string) (scenario Scenario, err error) {
	md, err := toml.DecodeFile(fileName, &scenario)
	if err != nil {
		err = fmt.Errorf("error while decoding scenario file %s: %s", fileName, err)
		return
	}

	err = finish(&scenario, md)

	return
}

// DecodeScenario - Same as LoadScenario but reads the scenario from a string
func DecodeScenario(data string) (scenario Scenario, err error) {
	md, err := toml.Decode(data, &scenario)
	if err != nil {
		err = fmt.Errorf("error while decoding scenario: %s", err)
		return
	}

	err = finish(&scenario, md)

	return
}

// finish - Rejects unknown keys, then applies defaults and environment overrides, and validates
func finish(scenario *Scenario, md toml.MetaData) (err error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		err = fmt.Errorf("unknown keys in scenario: %s", strings.Join(keys, ", "))
		return
	}

	scenario.applyDefaults()
	scenario.ApplyEnv()
	err = scenario.Validate()

	return
}

// applyDefaults - Fills in key type and hash algorithm if not given
func (S *Scenario) applyDefaults() {
	if S.Table.KeyType == "" {
		S.Table.KeyType = KeyTypeInt
	}
	if S.Table.Hash == "" {
		if S.Table.KeyType == KeyTypeString {
			S.Table.Hash = HashCRC32
		} else {
			S.Table.Hash = HashMod
		}
	}
}

// ApplyEnv - Overrides the log configuration with values from CHAINTAB_LOG_LEVEL, CHAINTAB_LOG_FORMAT and CHAINTAB_LOG_FILE
func (S *Scenario) ApplyEnv() {
	S.Log.Level = lookupEnv(EnvLogLevel, S.Log.Level)
	S.Log.Format = lookupEnv(EnvLogFormat, S.Log.Format)
	S.Log.Filename = lookupEnv(EnvLogFile, S.Log.Filename)
}

// Validate - Checks the table configuration and every operation
func (S *Scenario) Validate() (err error) {
	if S.Table.Capacity <= 0 || S.Table.Capacity > chainedhashmap.MaxCapacity {
		err = fmt.Errorf("table capacity must be a positive value higher than 0 (zero) and at most %d", chainedhashmap.MaxCapacity)
		return
	}

	switch S.Table.KeyType {
	case KeyTypeInt:
		if S.Table.Hash != HashMod {
			err = fmt.Errorf("hash %q can not be used with int keys, use %s", S.Table.Hash, HashMod)
			return
		}
	case KeyTypeString:
		if S.Table.Hash != HashCRC32 && S.Table.Hash != HashXXHash {
			err = fmt.Errorf("hash %q can not be used with string keys, use %s or %s", S.Table.Hash, HashCRC32, HashXXHash)
			return
		}
	default:
		err = fmt.Errorf("unsupported key type %q, should be %s or %s", S.Table.KeyType, KeyTypeInt, KeyTypeString)
		return
	}

	for i, op := range S.Ops {
		err = S.validateOperation(op)
		if err != nil {
			err = fmt.Errorf("invalid operation #%d: %s", i+1, err)
			return
		}
	}

	return
}

// validateOperation - Checks a single operation against the table configuration
func (S *Scenario) validateOperation(op Operation) (err error) {
	switch op.Kind {
	case OpStat:
		if op.Key != "" || op.Value != "" || op.Expect != "" {
			err = fmt.Errorf("%s takes no key, value or expect", OpStat)
		}
		return
	case OpSet, OpGet:
	case OpAdd, OpHas:
		if op.Expect != "" && op.Expect != "true" && op.Expect != "false" {
			err = fmt.Errorf("expect for %s must be true or false, got %q", op.Kind, op.Expect)
			return
		}
	default:
		err = fmt.Errorf("unsupported operation kind %q", op.Kind)
		return
	}

	if op.Kind == OpSet && op.Expect != "" {
		err = fmt.Errorf("%s takes no expect", OpSet)
		return
	}

	if S.Table.KeyType == KeyTypeInt {
		if _, err = strconv.ParseInt(op.Key, 10, 64); err != nil {
			err = fmt.Errorf("key %q is not an integer", op.Key)
		}
	}

	return
}
