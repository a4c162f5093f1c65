package sqlinline

const QInsertLookupEvent = `--sql 4b6f9a1e-3c52-4d8a-9f0e-2d7c8b5a1f64
insert into lookup_events(id, user_id, kind, input, output, country, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, coalesce($3::jsonb, '{}'::jsonb), coalesce($4::jsonb, '{}'::jsonb), nullif($5::text, ''), now());
`

const QSelectLookupHistory = `--sql 9d2a7c31-5e48-4fb0-8c6d-1a3e9f7b2c85
select kind, input, output, created_at
from lookup_events
where user_id = $1::uuid
order by created_at desc
limit $2::int;
`
