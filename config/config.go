package config

import (
	"os"

	jsoniter "github.com/json-iterator/go"
)

type (
	Split struct {
		// MaxTokens is the capacity of the token array handed to the splitter. Inputs with more
		// tokens are rejected rather than truncated.
		MaxTokens int `json:"max_tokens"`
	}

	KV struct {
		// MaxPairs bounds the number of delimiter-separated segments in a key-value list,
		// counting the skipped malformed ones too.
		MaxPairs int `json:"max_pairs"`
		// Separator is the default delimiter between pairs.
		Separator string `json:"separator"`
	}

	IntList struct {
		// MaxElements limits how large a parsed integer list may grow.
		MaxElements int `json:"max_elements"`
	}

	Decode struct {
		// BufferSize is the size of the output buffer for percent and hex decoding. Percent
		// decoding additionally reserves one byte of it for the terminator.
		BufferSize int `json:"buffer_size"`
	}
)

// Config holds limits and defaults for the parsers. Those are mostly output capacities, as
// the parsers themselves never allocate on behalf of the caller.
//
// Always start from Default() and modify what's needed instead of initializing the config
// manually, because zero limits are rejected by the parsers.
type Config struct {
	Split   Split   `json:"split"`
	KV      KV      `json:"kv"`
	IntList IntList `json:"int_list"`
	Decode  Decode  `json:"decode"`
}

// Default returns default config. Limits are tuned for request-line sized inputs.
func Default() *Config {
	return &Config{
		Split: Split{
			MaxTokens: 64,
		},
		KV: KV{
			MaxPairs:  32,
			Separator: ";",
		},
		IntList: IntList{
			MaxElements: 4096,
		},
		Decode: Decode{
			// 8kb is a common upper bound for a request line.
			BufferSize: 8 * 1024,
		},
	}
}

// Load reads a JSON file on top of Default(), so the file only needs to mention the
// settings it overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
