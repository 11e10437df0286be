package sqlinline

const QInsertProfile = `--sql 116d58ea-5ff1-42d0-a55a-53008452ab6b
insert into profiles (id, email, full_name, approved, can_chat, daily_chat_count, last_chat_date, created_at, updated_at)
values ($1::uuid, lower($2::text), $3::text, false, false, 0, null, now(), now());
`

const QSelectProfileByID = `--sql 06d50d74-f9ee-427e-8c95-4ca27daa4a12
select
    id,
    email,
    full_name,
    approved,
    can_chat,
    daily_chat_count,
    coalesce(to_char(last_chat_date, 'YYYY-MM-DD'), '') as last_chat_date,
    created_at,
    updated_at
from profiles
where id = $1::uuid
limit 1;
`

const QSelectProfileByEmail = `--sql 3fc45d50-0d6e-40c7-9abc-39605340f53d
select
    id,
    email,
    full_name,
    approved,
    can_chat,
    daily_chat_count,
    coalesce(to_char(last_chat_date, 'YYYY-MM-DD'), '') as last_chat_date,
    created_at,
    updated_at
from profiles
where email = lower($1::text)
limit 1;
`

const QUpdateProfileApproval = `--sql 8d3b1327-c0cd-40b8-a066-fd8cc6a308d2
update profiles
set approved = $2::bool,
    can_chat = $3::bool,
    updated_at = now()
where id = $1::uuid
returning
    id,
    email,
    full_name,
    approved,
    can_chat,
    daily_chat_count,
    coalesce(to_char(last_chat_date, 'YYYY-MM-DD'), '') as last_chat_date,
    created_at,
    updated_at;
`

// QRecordProfileChat writes the counter to a constant 1 rather than
// incrementing it. This preserves the behavior the quota data was written
// with historically; see internal/gate.Consume.
const QRecordProfileChat = `--sql d1b49914-ad59-4b37-b402-b27cc8036bc1
update profiles
set daily_chat_count = 1,
    last_chat_date = $2::date,
    updated_at = now()
where id = $1::uuid;
`
