package sqlinline

const QSelectIntegrationToken = `--sql 61b1c608-55d1-4fa8-a9b3-3e3067c2f035
select token
from integration_tokens
where provider = $1::text
limit 1;
`

const QUpsertIntegrationToken = `--sql c90c7167-dd81-4ce3-bd0d-2c5efdbae397
insert into integration_tokens (provider, token, properties, created_at, updated_at)
values ($1::text, $2::text, $3::jsonb, now(), now())
on conflict (provider) do update set
    token = excluded.token,
    properties = excluded.properties,
    updated_at = now();
`
