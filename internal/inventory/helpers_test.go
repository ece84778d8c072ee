package inventory

import (
	"context"
	"errors"
	"iter"

	"github.com/mesh-intelligence/nodetypes/pkg/types"
)

// fakeRepository is an in-memory types.Repository for printer tests.
type fakeRepository struct {
	nodeTypes   []*types.NodeType
	enumErr     error // yielded after all node types when set
	loginErr    error
	keys        []string
	descriptors map[string]string
	keysErr     error
	namespaces  []types.Namespace

	logins  int
	logouts int
}

func (r *fakeRepository) Login(context.Context) (types.Session, error) {
	if r.loginErr != nil {
		return nil, r.loginErr
	}
	r.logins++
	return &fakeSession{repo: r}, nil
}

func (r *fakeRepository) DescriptorKeys() ([]string, error) {
	if r.keysErr != nil {
		return nil, r.keysErr
	}
	return r.keys, nil
}

func (r *fakeRepository) Descriptor(key string) (string, error) {
	v, ok := r.descriptors[key]
	if !ok {
		return "", types.ErrDescriptorNotFound
	}
	return v, nil
}

type fakeSession struct {
	repo *fakeRepository
}

func (s *fakeSession) NodeTypes() iter.Seq2[*types.NodeType, error] {
	return func(yield func(*types.NodeType, error) bool) {
		for _, nt := range s.repo.nodeTypes {
			if !yield(nt, nil) {
				return
			}
		}
		if s.repo.enumErr != nil {
			yield(nil, s.repo.enumErr)
		}
	}
}

func (s *fakeSession) NamespacePrefixes() ([]string, error) {
	prefixes := make([]string, 0, len(s.repo.namespaces))
	for _, ns := range s.repo.namespaces {
		prefixes = append(prefixes, ns.Prefix)
	}
	return prefixes, nil
}

func (s *fakeSession) RegistryPrefixes() ([]string, error) {
	var prefixes []string
	for _, ns := range s.repo.namespaces {
		if ns.Global {
			prefixes = append(prefixes, ns.Prefix)
		}
	}
	return prefixes, nil
}

func (s *fakeSession) NamespaceURI(prefix string) (string, error) {
	for _, ns := range s.repo.namespaces {
		if ns.Prefix == prefix {
			return ns.URI, nil
		}
	}
	return "", types.ErrNamespaceNotFound
}

func (s *fakeSession) Logout() error {
	s.repo.logouts++
	return nil
}

// failingWriter rejects every write.
type failingWriter struct{}

var errWriteFailed = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }
