// Package models defines the core domain models for HomiMeet.
//
// # Persisted Models
//
//   - User: registered account, identified by a UUID string
//   - Meetup: a scheduled gathering owned by one creator
//   - Invitation: one invitee's response to one meetup
//   - PunctualityLog: a recorded arrival outcome with a score
//   - Group: a named set of meetups with a shared leaderboard
//   - Profile, UserLocation: per-user data keyed by user ID
//
// # Derived Models
//
// Member and MeetupView are never stored. They are built by the roster
// aggregator from normalized Meetup rows and invitation rosters.
//
// # Design Principles
//
//  1. Relationships use IDs, never pointers between models
//  2. Optional columns are pointers (Lat, Lng, GroupID) or zero values (ScheduledAt)
//  3. Rows are normalized once at the storage boundary
package models
