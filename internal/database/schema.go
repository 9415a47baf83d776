package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`create table if not exists ` + MembersTable + ` (
		id bigserial primary key,
		full_name text not null,
		email text not null unique,
		photo text not null default ''
	)`,
	`create table if not exists ` + TeamsTable + ` (
		id bigserial primary key,
		name text not null,
		member_limit int not null,
		profile_url text not null default '',
		invite_link text not null default '',
		is_delete boolean not null default false,
		restoration_dt date
	)`,
	`create table if not exists ` + TeamParticipantsTable + ` (
		id bigserial primary key,
		team_id bigint not null references ` + TeamsTable + ` (id),
		member_id bigint not null references ` + MembersTable + ` (id),
		nickname text not null,
		team_role int not null,
		unique (team_id, member_id)
	)`,
	`create table if not exists ` + CategoriesTable + ` (
		id bigserial primary key,
		team_id bigint not null references ` + TeamsTable + ` (id),
		name text not null,
		category_type int not null,
		color text not null
	)`,
	`create table if not exists ` + SimpleSchedulesTable + ` (
		id bigserial primary key,
		team_id bigint not null references ` + TeamsTable + ` (id),
		category_id bigint not null references ` + CategoriesTable + ` (id),
		title text not null,
		content text not null default '',
		place text not null default '',
		start_dt timestamptz not null,
		end_dt timestamptz not null,
		color text not null default '',
		create_participant_id bigint not null,
		converted boolean not null default false
	)`,
	`create table if not exists ` + RepeatSchedulesTable + ` (
		id bigserial primary key,
		team_id bigint not null references ` + TeamsTable + ` (id),
		category_id bigint not null references ` + CategoriesTable + ` (id),
		title text not null,
		content text not null default '',
		place text not null default '',
		start_dt timestamptz not null,
		end_dt timestamptz not null,
		color text not null default '',
		create_participant_id bigint not null,
		repeat_cycle int not null,
		day_of_week text,
		day int,
		month text,
		origin_repeat_schedule_id bigint not null default 0,
		version bigint not null default 0
	)`,
	`create table if not exists ` + ParticipantSchedulesTable + ` (
		id bigserial primary key,
		team_participant_id bigint not null references ` + TeamParticipantsTable + ` (id),
		simple_schedule_id bigint references ` + SimpleSchedulesTable + ` (id) on delete cascade,
		repeat_schedule_id bigint references ` + RepeatSchedulesTable + ` (id) on delete cascade,
		check (
			(simple_schedule_id is null) <> (repeat_schedule_id is null)
		)
	)`,
}

// Migrate накатывает схему при старте. Все statements идемпотентны.
func Migrate(ctx context.Context, db PGX) error {
	for _, stmt := range schema {
		if _, err := db.ExecRaw(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return nil
}
