//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Producer=Producer"
package message

import "context"

type Producer interface {
	Produce(ctx context.Context, msg *Message) error
}
