// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filter turns raw listing parameters (search term, time window,
// page number) into typed queries and squirrel predicates.
//
// All user input reaches SQL as bound arguments. LIKE wildcards inside a
// search term are escaped so they match literally.
package filter
