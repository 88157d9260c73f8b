// 31 July 2020

/*

Randseq is for making random sequences for testing the counting code.
Usage:
	randseq [options] [outfile]
will generate sequences and write them to outfile, or standard output if
there is no outfile or it is "-".

Flags:
	-fastq
		write four line fastq records. Quality strings are random and
		may start with "@" or "+", which is just what we want to test.
	-b
		put white space and blank lines after each fasta sequence
	-n
		number of sequences
	-l
		maximum length. Lengths are random from 1 to this.
	-w
		line width for fasta. 0 puts each sequence on one line.
	-s
		random number seed
	-c
		comment put on each header line

When it finishes, it tells you how many residues it wrote, so you know
what seqcount should say.
*/
package main
