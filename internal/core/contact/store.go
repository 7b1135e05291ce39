// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package contact

import "context"

// Repository persists contact messages. A missing row is CONTACT_MESSAGE_NOT_FOUND.
type Repository interface {
	Create(context context.Context, message *Message) error
	FindByID(context context.Context, id int64) (*Message, error)

	// Count and List filter on status when it is non-empty. List is newest first.
	Count(context context.Context, status Status) (int, error)
	List(context context.Context, status Status, offset, limit int) ([]*Message, error)

	UpdateStatus(context context.Context, id int64, status Status) (*Message, error)
}
