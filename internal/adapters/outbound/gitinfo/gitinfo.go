package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git. Site directories
// are usually nested inside a repository, so detection walks up from the
// audited path.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func (g *GitInfoAdapter) IsGitRepo(sitePath string) bool {
	_, err := open(sitePath)
	return err == nil
}

func (g *GitInfoAdapter) CommitHash(sitePath string) (string, error) {
	repo, err := open(sitePath)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

func open(sitePath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(sitePath, &git.PlainOpenOptions{DetectDotGit: true})
}
