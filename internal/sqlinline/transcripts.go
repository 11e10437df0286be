package sqlinline

const QUpsertTranscript = `--sql ba75e5c2-caea-4e94-974d-798cfc0016b9
insert into transcripts (video_id, title, transcript_text, transcript_json, created_at)
values ($1::text, $2::text, $3::text, $4::jsonb, now())
on conflict (video_id) do update set
    title = excluded.title,
    transcript_text = excluded.transcript_text,
    transcript_json = excluded.transcript_json;
`

const QListTranscripts = `--sql b3b6cd5c-e867-41b8-8003-c8c348f41f30
select video_id, title, created_at
from transcripts
order by created_at desc;
`

const QListTranscriptsWithText = `--sql 6494624e-bc07-4060-b37d-1907fd1f4411
select video_id, title, transcript_text, created_at
from transcripts
order by created_at desc;
`

const QSelectTranscriptText = `--sql a9a60fc6-c835-4309-8941-c6f442927c94
select transcript_text
from transcripts
where video_id = $1::text
limit 1;
`
