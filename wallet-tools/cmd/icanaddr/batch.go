package main

import (
	"encoding/json"
	"time"

	"ican-wallet/wallet-base/cmd"
	"ican-wallet/wallet-base/util"
	"ican-wallet/wallet-tools/base/crypto"
	"ican-wallet/wallet-tools/base/crypto/create"
	"ican-wallet/wallet-tools/base/crypto/ican"

	"github.com/buger/jsonparser"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	schemeCreate  = "create"
	schemeCreate2 = "create2"
)

type request struct {
	scheme   string
	network  ican.Network
	caller   ican.Address
	nonce    uint64
	codeHash crypto.Hash
	salt     *uint256.Int
}

type result struct {
	Scheme  string       `json:"scheme"`
	Network string       `json:"network"`
	Caller  ican.Address `json:"caller"`
	Address ican.Address `json:"address"`
	Raw     crypto.Bytes `json:"raw"`
}

func (r *request) derive() *result {
	var raw ican.RawAddress
	switch r.scheme {
	case schemeCreate:
		raw = create.CreateRawAddress(r.caller, r.nonce)
	case schemeCreate2:
		raw = create.Create2RawAddress(r.caller, r.codeHash, r.salt)
	}

	return &result{
		Scheme:  r.scheme,
		Network: r.network.String(),
		Caller:  r.caller,
		Address: ican.Encode(raw, r.network),
		Raw:     raw.Bytes(),
	}
}

// parseRequests reads a JSON array of derivation requests.
// Entries without a network use defaultNetwork.
func parseRequests(data []byte, defaultNetwork ican.Network) ([]*request, error) {
	var reqs []*request
	err := util.JSONParserArrayEach(data, func(_ int, value []byte, t jsonparser.ValueType) error {
		if t != jsonparser.Object {
			return errors.Errorf("request is %s, not object", t)
		}

		req, err := parseRequest(value, defaultNetwork)
		if err != nil {
			return err
		}
		reqs = append(reqs, req)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse batch requests failed")
	}
	return reqs, nil
}

func parseRequest(value []byte, defaultNetwork ican.Network) (*request, error) {
	req := &request{
		scheme:  schemeCreate,
		network: defaultNetwork,
	}

	if scheme, err := jsonparser.GetString(value, "scheme"); err == nil {
		req.scheme = scheme
	}

	if network, err := jsonparser.GetString(value, "network"); err == nil {
		n, err := ican.ParseNetwork(network)
		if err != nil {
			return nil, err
		}
		req.network = n
	}

	caller, err := jsonparser.GetString(value, "caller")
	if err != nil {
		return nil, errors.Wrap(err, "missing caller")
	}
	req.caller, err = ican.ParseAddress(caller)
	if err != nil {
		return nil, errors.Wrap(err, "invalid caller")
	}

	switch req.scheme {
	case schemeCreate:
		req.nonce, err = util.JSONParserGetUint64(value, "nonce")
		if err != nil {
			return nil, errors.Wrap(err, "invalid nonce")
		}

	case schemeCreate2:
		codeHash, err := jsonparser.GetString(value, "codehash")
		if err != nil {
			return nil, errors.Wrap(err, "missing codehash")
		}
		req.codeHash, err = crypto.HexToHash(codeHash)
		if err != nil {
			return nil, errors.Wrap(err, "invalid codehash")
		}

		req.salt, err = util.JSONParserGetUint256(value, "salt")
		if err != nil {
			return nil, errors.Wrap(err, "invalid salt")
		}

	default:
		return nil, errors.Errorf("unsupported scheme %q", req.scheme)
	}

	return req, nil
}

func newBatchCommand(opts *options) *cmd.Command {
	var (
		inputFile  string
		jsonOutput bool
	)

	c := cmd.New(
		"batch",
		"derive addresses for a JSON array of create/create2 requests.",
		"./icanaddr batch -i requests.json --json",
		func(c *cmd.Command, _ []string) error {
			data, err := util.ReadAll(inputFile)
			if err != nil {
				return err
			}

			reqs, err := parseRequests(data, opts.cfg.Network)
			if err != nil {
				return err
			}

			start := time.Now()
			results := make([]*result, 0, len(reqs))
			err = util.NewBatch(len(reqs), func(idx int) (interface{}, error) {
				return reqs[idx].derive(), nil
			}, func(_ int, data interface{}) error {
				results = append(results, data.(*result))
				return nil
			}).WithWorkers(opts.cfg.Workers).Do()
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"count":   len(results),
				"workers": opts.cfg.Workers,
				"cost":    time.Since(start),
			}).Info("batch derived")

			if jsonOutput {
				out, err := json.MarshalIndent(results, "", "  ")
				if err != nil {
					return errors.Wrap(err, "marshal results failed")
				}
				output(c, string(out))
				return nil
			}

			for _, r := range results {
				output(c, r.Address)
			}
			return nil
		},
	)
	c.LocalFlags().StringVarP(&inputFile, "input", "i", "", "the JSON file of requests")
	c.LocalFlags().BoolVarP(&jsonOutput, "json", "", false, "print results as JSON")
	c.MarkRequired("input")
	return c
}
