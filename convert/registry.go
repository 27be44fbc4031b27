package convert

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Params carries string options for converters built by name.
type Params map[string]string

// reverseSuffix selects the Decode direction of a codec.
const reverseSuffix = "-d"

func (p Params) intParam(key string) (int, error) {
	v, ok := p[key]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("param %s: %w", key, err)
	}
	return n, nil
}

func (p Params) hexParam(key string) ([]byte, error) {
	v := strings.TrimSpace(p[key])
	if v == "" {
		return nil, fmt.Errorf("param %s: %w", key, ErrInvalidKey)
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("param %s: %w", key, err)
	}
	return b, nil
}

func codecByName(name string, params Params) (Codec, error) {
	switch name {
	case "gzip", "deflate", "brotli", "br", "zstd", "s2", "snappy":
		level, err := params.intParam("level")
		if err != nil {
			return nil, err
		}
		maxSize, err := params.intParam("max_size")
		if err != nil {
			return nil, err
		}
		limit := int64(maxSize)
		switch name {
		case "gzip":
			return Gzip{Level: level, MaxSize: limit}, nil
		case "deflate":
			return Deflate{Level: level, MaxSize: limit}, nil
		case "zstd":
			return Zstd{Level: level, MaxSize: limit}, nil
		case "s2":
			return S2{MaxSize: limit}, nil
		case "snappy":
			return Snappy{MaxSize: limit}, nil
		default:
			return Brotli{Level: level, MaxSize: limit}, nil
		}
	case "aes-gcm":
		key, err := params.hexParam("key")
		if err != nil {
			return nil, err
		}
		return AESGCM{Key: key}, nil
	case "chacha20-poly1305":
		key, err := params.hexParam("key")
		if err != nil {
			return nil, err
		}
		return ChaCha20Poly1305{Key: key}, nil
	}
	return nil, nil
}

var codecNames = []string{"gzip", "deflate", "brotli", "br", "zstd", "s2", "snappy", "aes-gcm", "chacha20-poly1305"}

// New builds the converter registered under name. Codec names run the
// encoding direction; the same name suffixed with "-d" runs it backwards.
func New(name string, params Params) (ByteArrayConverter, error) {
	if params == nil {
		params = Params{}
	}
	c, err := build(name, params)
	if err != nil {
		return nil, conversionError(name, err)
	}
	return c, nil
}

func build(name string, params Params) (ByteArrayConverter, error) {
	base, reverse := strings.CutSuffix(name, reverseSuffix)
	codec, err := codecByName(base, params)
	if err != nil {
		return nil, err
	}
	if codec != nil {
		if reverse {
			return Reverse(name, codec), nil
		}
		return Forward(name, codec), nil
	}

	if _, ok := hashes[name]; ok {
		return Digest{Algorithm: name}, nil
	}
	if alg, ok := strings.CutPrefix(name, "hmac-"); ok {
		if _, ok := hashes[alg]; ok {
			key, err := params.hexParam("key")
			if err != nil {
				return nil, err
			}
			return HMAC{Algorithm: alg, Key: key}, nil
		}
	}

	switch name {
	case "plain", "identity", "":
		return Identity{}, nil
	case "multihash":
		return Multihash{Algorithm: params["algorithm"]}, nil
	case "ed25519":
		seed, err := params.hexParam("seed")
		if err != nil {
			return nil, err
		}
		return Ed25519Signer{Seed: seed}, nil
	case "dilithium3":
		seed, err := params.hexParam("seed")
		if err != nil {
			return nil, err
		}
		return Dilithium3Signer{Seed: seed}, nil
	case "msgpack2json":
		return MsgpackToJSON{}, nil
	case "json2msgpack":
		return JSONToMsgpack{}, nil
	case "prettyjson":
		indent, err := params.intParam("indent")
		if err != nil {
			return nil, err
		}
		return PrettyJSON{Indent: indent}, nil
	case "replace":
		count, err := params.intParam("count")
		if err != nil {
			return nil, err
		}
		return NewReplacement(Replacement{
			From:  params["from"],
			To:    params["to"],
			Count: count,
			Type:  ReplaceType(params["type"]),
		})
	}
	return nil, ErrUnknownConverter
}

// Names lists every name New accepts, sorted.
func Names() []string {
	names := []string{"plain", "identity", "multihash", "ed25519", "dilithium3", "msgpack2json", "json2msgpack", "prettyjson", "replace"}
	for _, name := range codecNames {
		names = append(names, name, name+reverseSuffix)
	}
	for name := range hashes {
		names = append(names, name, "hmac-"+name)
	}
	sort.Strings(names)
	return names
}
