package schemas

import (
	"fmt"
	"strings"
)

// Issue is a single violated rule: the field path in the payload, a human
// readable message and the code of the rule that failed.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// IssueList is the structured failure result of a parse. It satisfies error
// so it can travel through error returns, but handlers serialize it whole.
type IssueList struct {
	Issues []Issue `json:"issues"`
}

func (l *IssueList) add(path, message, code string) {
	l.Issues = append(l.Issues, Issue{Path: path, Message: message, Code: code})
}

func (l *IssueList) Error() string {
	parts := make([]string, 0, len(l.Issues))
	for _, issue := range l.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
	}
	return strings.Join(parts, "; ")
}
