// Copyright (C) 2025 SAGE-X Project
//
// This file is part of shucang-go.
//
// shucang-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shucang-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with shucang-go.  If not, see <https://www.gnu.org/licenses/>.

package transport

import (
	"fmt"
	"net/http"
	"strings"
)

// Base URLs of the open API.
const (
	SandboxURL    = "http://dev-openapi.365ex.art/api/v1/open"
	ProductionURL = "https://openapi.365ex.art/api/v1/open"
)

// Environment selects which deployment a client talks to.
type Environment string

const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// ParseEnvironment accepts "sandbox"/"dev" and "production"/"prod",
// case-insensitively.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sandbox", "dev":
		return Sandbox, nil
	case "production", "prod":
		return Production, nil
	default:
		return "", fmt.Errorf("unknown environment %q (want sandbox or production)", s)
	}
}

// BaseURL returns the endpoint of the environment.
func (e Environment) BaseURL() (string, error) {
	switch e {
	case Sandbox:
		return SandboxURL, nil
	case Production:
		return ProductionURL, nil
	default:
		return "", fmt.Errorf("unknown environment %q", string(e))
	}
}

// NewSender creates an HTTPSender for env. A non-empty overrideURL takes
// precedence over the environment's base URL.
//
// Example:
//
//	sender, err := transport.NewSender(transport.Production, "", nil)
//	if err != nil {
//	    return err
//	}
//	c, err := client.NewClient(appID, ring, sender)
func NewSender(env Environment, overrideURL string, httpClient *http.Client) (*HTTPSender, error) {
	if overrideURL != "" {
		return NewHTTPSender(overrideURL, httpClient), nil
	}

	url, err := env.BaseURL()
	if err != nil {
		return nil, err
	}
	return NewHTTPSender(url, httpClient), nil
}
