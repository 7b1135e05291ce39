// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

// Package schema names the tables and columns of the CMS database.
//
// Repositories build SQL from these values instead of string literals, so a
// renamed column is a one-line change here.
package schema
