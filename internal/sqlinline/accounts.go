package sqlinline

const QInsertAccount = `--sql 8fd205b9-d444-45a8-b074-b6eee379cff5
insert into accounts (id, email, password_hash, created_at)
values (gen_random_uuid(), lower($1::text), $2::text, now())
returning id, email, password_hash, created_at;
`

const QSelectAccountByEmail = `--sql 8e890191-6ba5-4384-a76e-c9625b7f8ffe
select id, email, password_hash, created_at
from accounts
where email = lower($1::text)
limit 1;
`
