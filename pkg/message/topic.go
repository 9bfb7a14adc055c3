package message

import (
	"fmt"
	"strings"

	pkgstrings "github.com/klwxsrx/mastermind/pkg/strings"
)

const domainEventTopicBaseName = "domain-event"

type (
	Topic              string
	TopicBuilderOption func(*topicBuilder)

	topicBuilder struct {
		baseName  string
		domain    string
		aggregate string
	}
)

func NewTopic(baseName string, opts ...TopicBuilderOption) Topic {
	builder := topicBuilder{baseName: pkgstrings.ToKebabCase(baseName)}
	for _, opt := range opts {
		opt(&builder)
	}

	return builder.Build()
}

func NewDomainEventTopic(domainName, aggregateName string) Topic {
	return NewTopic(
		domainEventTopicBaseName,
		WithTopicDomainName(domainName),
		WithTopicAggregateName(aggregateName),
	)
}

func (t Topic) String() string {
	return string(t)
}

func (b *topicBuilder) Build() Topic {
	const separator = '.'

	sb := strings.Builder{}
	sb.WriteString(b.baseName)

	addTagIfNotEmpty := func(tag string) {
		if tag != "" {
			sb.WriteRune(separator)
			sb.WriteString(tag)
		}
	}

	addTagIfNotEmpty(b.domain)
	addTagIfNotEmpty(b.aggregate)

	return Topic(sb.String())
}

func WithTopicDomainName(name string) TopicBuilderOption {
	name = pkgstrings.ToKebabCase(name)
	return func(builder *topicBuilder) {
		builder.domain = fmt.Sprintf("%s-domain", name)
	}
}

func WithTopicAggregateName(name string) TopicBuilderOption {
	name = pkgstrings.ToKebabCase(name)
	return func(builder *topicBuilder) {
		builder.aggregate = fmt.Sprintf("%s-aggregate", name)
	}
}
