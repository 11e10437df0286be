package sqlinline

const QInsertUsageEvent = `--sql b1e91bab-7280-4cba-bbeb-13d322c63af1
insert into usage_events (id, user_id, video_id, kind, success, properties, created_at)
values (gen_random_uuid(), $1::uuid, nullif($2::text, ''), $3::text, $4::bool, $5::jsonb, now());
`

const QUsageSummary24h = `--sql 96b2c39e-6acf-48ac-8175-f68a4e2edef4
select
    kind,
    count(*) as total,
    count(*) filter (where success) as succeeded
from usage_events
where created_at >= now() - interval '24 hours'
group by kind
order by kind;
`
