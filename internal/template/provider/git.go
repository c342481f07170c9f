package provider

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/tacogips/scaffold/internal/debug"
	"github.com/tacogips/scaffold/internal/template/model"
)

// defaultSSHUser is used when neither the URL nor the options name one.
const defaultSSHUser = "git"

// defaultKeyFiles are tried in order under ~/.ssh when no key is configured.
var defaultKeyFiles = []string{"id_ed25519", "id_ecdsa", "id_rsa"}

// GitOptions configures repository access.
type GitOptions struct {
	// Ref is the branch to clone. It overrides a branch named by the location.
	Ref string
	// DefaultRef is used when neither Ref nor the location names a branch.
	// Empty means the remote HEAD.
	DefaultRef string
	// SSHKeyPath is the private key for SSH URLs. Empty tries ~/.ssh defaults,
	// then the SSH agent.
	SSHKeyPath string
	// SSHUser is the SSH user for URLs that do not name one.
	SSHUser string
	// Passphrase decrypts the SSH key.
	Passphrase string
	// PassphraseFunc is asked for a passphrase when the key cannot be loaded
	// without one and Passphrase is empty.
	PassphraseFunc func() (string, error)
	// Token authenticates HTTPS clones from github.com.
	Token string
}

// cloneFunc clones a repository worktree into fs.
type cloneFunc func(ctx context.Context, fs billy.Filesystem, opts *git.CloneOptions) error

// GitProvider implements Provider by shallow-cloning repositories into memory.
type GitProvider struct {
	opts  GitOptions
	clone cloneFunc
}

// NewGitProvider creates a git provider.
func NewGitProvider(opts GitOptions) *GitProvider {
	return &GitProvider{opts: opts, clone: cloneInMemory}
}

func cloneInMemory(ctx context.Context, fs billy.Filesystem, opts *git.CloneOptions) error {
	_, err := git.CloneContext(ctx, memory.NewStorage(), fs, opts)
	return err
}

// Name returns the provider name.
func (p *GitProvider) Name() string {
	return "git"
}

// Resolve parses a git location into a TemplateSource.
func (p *GitProvider) Resolve(location string) (model.TemplateSource, error) {
	debug.Debug("[git] Resolving location: %s", location)

	loc, err := ParseGitLocation(location)
	if err != nil {
		debug.Debug("[git] Failed to parse location: %v", err)
		return model.TemplateSource{}, NewInvalidURLError(p.Name(), location, err)
	}

	ref := loc.Ref
	if p.opts.Ref != "" {
		ref = p.opts.Ref
	}
	if ref == "" {
		ref = p.opts.DefaultRef
	}

	debug.Debug("[git] Resolved: url=%s, ref=%s, subdir=%s", loc.URL, ref, loc.Subdir)
	return model.TemplateSource{
		Location: location,
		Provider: p.Name(),
		URL:      loc.URL,
		Ref:      ref,
		Subdir:   loc.Subdir,
	}, nil
}

// Fetch clones the repository (depth 1) into an in-memory filesystem.
func (p *GitProvider) Fetch(ctx context.Context, src model.TemplateSource) (*model.Template, error) {
	auth, err := p.auth(src.URL)
	if err != nil {
		return nil, NewAuthError(p.Name(), src.Location, err)
	}

	opts := &git.CloneOptions{
		URL:   src.URL,
		Depth: 1,
		Auth:  auth,
		Tags:  git.NoTags,
	}
	if src.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(src.Ref)
		opts.SingleBranch = true
	}

	debug.Debug("[git] Cloning %s (ref=%q)", src.URL, src.Ref)
	fs := memfs.New()
	if err := p.clone(ctx, fs, opts); err != nil {
		debug.Debug("[git] Clone failed: %v", err)
		return nil, p.classify(src, err)
	}

	root, err := chroot(p.Name(), src.Location, fs, src.Subdir)
	if err != nil {
		return nil, err
	}
	if err := checkRoot(p.Name(), src.Location, root); err != nil {
		return nil, err
	}

	debug.Debug("[git] Cloned template from %s", src.URL)
	return &model.Template{Source: src, Root: root}, nil
}

// classify maps clone failures onto provider error types.
func (p *GitProvider) classify(src model.TemplateSource, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return NewTimeoutError(p.Name(), src.Location, err)
	case errors.Is(err, transport.ErrAuthenticationRequired),
		errors.Is(err, transport.ErrAuthorizationFailed):
		return NewAuthError(p.Name(), src.Location, err)
	case errors.Is(err, transport.ErrRepositoryNotFound):
		return NewProviderError(ProviderNotFound, p.Name(), src.Location, "repository not found", err)
	case errors.Is(err, git.NoMatchingRefSpecError{}), errors.Is(err, plumbing.ErrReferenceNotFound):
		return NewProviderError(ProviderNotFound, p.Name(), src.Location, "branch "+src.Ref+" not found", err)
	case errors.Is(err, transport.ErrEmptyRemoteRepository):
		return NewInvalidTemplateError(p.Name(), src.Location, "repository is empty", err)
	default:
		return NewFetchError(p.Name(), src.Location, err)
	}
}

// auth selects credentials for url: SSH keys (or the agent) for SSH URLs, a
// token for github.com over HTTPS, nothing otherwise.
func (p *GitProvider) auth(rawURL string) (transport.AuthMethod, error) {
	if isSSHURL(rawURL) {
		return p.sshAuth(rawURL)
	}
	if p.opts.Token != "" {
		if u, err := url.Parse(rawURL); err == nil && u.Scheme == "https" && u.Host == "github.com" {
			debug.Debug("[git] Using token authentication")
			return &githttp.BasicAuth{Username: "x-access-token", Password: p.opts.Token}, nil
		}
	}
	return nil, nil
}

func (p *GitProvider) sshAuth(rawURL string) (transport.AuthMethod, error) {
	user := p.sshUser(rawURL)

	keyPath, err := p.keyPath()
	if err != nil {
		return nil, err
	}
	if keyPath == "" {
		debug.Debug("[git] No SSH key found, using SSH agent")
		agent, err := ssh.NewSSHAgentAuth(user)
		if err != nil {
			debug.Debug("[git] SSH agent unavailable: %v", err)
			return nil, nil
		}
		return agent, nil
	}

	debug.Debug("[git] Using SSH key %s for user %s", keyPath, user)
	keys, err := ssh.NewPublicKeysFromFile(user, keyPath, p.opts.Passphrase)
	if err == nil || p.opts.Passphrase != "" || p.opts.PassphraseFunc == nil {
		return keys, err
	}

	// The key is probably encrypted; ask once.
	passphrase, perr := p.opts.PassphraseFunc()
	if perr != nil {
		return nil, perr
	}
	return ssh.NewPublicKeysFromFile(user, keyPath, passphrase)
}

// keyPath returns the configured key or the first default key that exists.
func (p *GitProvider) keyPath() (string, error) {
	if p.opts.SSHKeyPath != "" {
		return expandHome(p.opts.SSHKeyPath)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	for _, name := range defaultKeyFiles {
		candidate := filepath.Join(home, ".ssh", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

func isSSHURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "ssh://") || scpLike.MatchString(rawURL)
}

// sshUser picks the SSH login: the user named in the URL, then the configured
// user, then defaultSSHUser.
func (p *GitProvider) sshUser(rawURL string) string {
	if user := sshUserFromURL(rawURL); user != "" {
		return user
	}
	if p.opts.SSHUser != "" {
		return p.opts.SSHUser
	}
	return defaultSSHUser
}

// sshUserFromURL returns the user part of an SSH URL, or "".
func sshUserFromURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "ssh://") {
		if u, err := url.Parse(rawURL); err == nil && u.User != nil {
			return u.User.Username()
		}
		return ""
	}
	if user, _, ok := strings.Cut(rawURL, "@"); ok && !strings.Contains(user, "/") {
		return user
	}
	return ""
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
