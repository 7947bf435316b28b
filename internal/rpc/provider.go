package rpc

import (
	"fmt"
	"strings"
)

// ProviderKind is the transport a provider URI resolves to.
type ProviderKind int

const (
	ProviderHTTP ProviderKind = iota
	ProviderWebsocket
	ProviderIPC
)

func (k ProviderKind) String() string {
	switch k {
	case ProviderHTTP:
		return "http"
	case ProviderWebsocket:
		return "websocket"
	case ProviderIPC:
		return "ipc"
	default:
		return "unknown"
	}
}

// ResolveProvider maps a provider URI to its kind and the endpoint to dial.
// file:// URIs and bare *.ipc paths are unix sockets.
func ResolveProvider(uri string) (ProviderKind, string, error) {
	uri = strings.TrimSpace(uri)
	lower := strings.ToLower(uri)
	switch {
	case uri == "":
		return 0, "", fmt.Errorf("provider URI is empty")
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return ProviderHTTP, uri, nil
	case strings.HasPrefix(lower, "ws://"), strings.HasPrefix(lower, "wss://"):
		return ProviderWebsocket, uri, nil
	case strings.HasPrefix(lower, "file://"):
		path := uri[len("file://"):]
		if path == "" {
			return 0, "", fmt.Errorf("provider URI %s has no socket path", uri)
		}
		return ProviderIPC, path, nil
	case strings.HasSuffix(lower, ".ipc"):
		return ProviderIPC, uri, nil
	default:
		return 0, "", fmt.Errorf("unknown provider URI scheme: %s", uri)
	}
}
